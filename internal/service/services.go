package service

import (
	"github.com/MKhiriev/go-enquete/internal/adapter"
	"github.com/MKhiriev/go-enquete/internal/config"
	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/store"
)

type ClientServices struct {
	Authentication Authentication
	Session        Session
}

func NewClientServices(cfg config.ClientApp, storages *store.ClientStorages, postClient adapter.HTTPPostClient, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Authentication: NewRemoteAuthentication(cfg.LoginPath, postClient, logger),
		Session:        NewSessionService(storages.LocalStorage, logger),
	}
}
