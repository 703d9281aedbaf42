// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-enquete/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicação: ")
	b.WriteString(appHeader)
	b.WriteString("\n")
	b.WriteString("Versão: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Data: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("SOBRE", overlayBoxStyle.Render(b.String()), "esc: voltar")
}
