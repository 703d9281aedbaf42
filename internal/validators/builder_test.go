package validators

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var allowRules = cmp.AllowUnexported(RequiredFieldValidation{}, EmailValidation{}, MinLengthValidation{})

func TestBuilder_Required(t *testing.T) {
	got := Field("any_field").Required().Build()

	want := []FieldValidation{NewRequiredFieldValidation("any_field")}
	if diff := cmp.Diff(want, got, allowRules); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_Email(t *testing.T) {
	got := Field("any_field").Email().Build()

	want := []FieldValidation{NewEmailValidation("any_field")}
	if diff := cmp.Diff(want, got, allowRules); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_Min(t *testing.T) {
	got := Field("any_field").Min(5).Build()

	want := []FieldValidation{NewMinLengthValidation("any_field", 5)}
	if diff := cmp.Diff(want, got, allowRules); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_KeepsInsertionOrder(t *testing.T) {
	got := Field("any_field").Required().Min(5).Email().Build()

	want := []FieldValidation{
		NewRequiredFieldValidation("any_field"),
		NewMinLengthValidation("any_field", 5),
		NewEmailValidation("any_field"),
	}
	if diff := cmp.Diff(want, got, allowRules); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_EmptyChain(t *testing.T) {
	assert.Empty(t, Field("any_field").Build())
}

func TestBuilder_IsImmutable(t *testing.T) {
	base := Field("password").Required()

	short := base.Min(3)
	long := base.Min(8)

	assert.Len(t, base.Build(), 1)
	if diff := cmp.Diff([]FieldValidation{
		NewRequiredFieldValidation("password"),
		NewMinLengthValidation("password", 3),
	}, short.Build(), allowRules); diff != "" {
		t.Errorf("short chain mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]FieldValidation{
		NewRequiredFieldValidation("password"),
		NewMinLengthValidation("password", 8),
	}, long.Build(), allowRules); diff != "" {
		t.Errorf("long chain mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_BuildReturnsOwnedSlice(t *testing.T) {
	b := Field("email").Required().Email()

	first := b.Build()
	first[0] = NewMinLengthValidation("email", 99)

	second := b.Build()
	assert.Equal(t, NewRequiredFieldValidation("email"), second[0])
}

func TestFlatten(t *testing.T) {
	got := Flatten(
		Field("email").Required().Email().Build(),
		nil,
		Field("password").Required().Min(5).Build(),
	)

	want := []FieldValidation{
		NewRequiredFieldValidation("email"),
		NewEmailValidation("email"),
		NewRequiredFieldValidation("password"),
		NewMinLengthValidation("password", 5),
	}
	if diff := cmp.Diff(want, got, allowRules); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}
