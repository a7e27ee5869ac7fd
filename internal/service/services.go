package service

import (
	"github.com/voltlab/device-hub/internal/config"
	"github.com/voltlab/device-hub/internal/repository"
	"github.com/voltlab/device-hub/internal/token"
)

type Services struct {
	Auth   *AuthService
	Device *DeviceService
}

func NewServices(repos *repository.Repositories, tokens *token.Codec, publisher EventPublisher, cfg *config.Config) *Services {
	return &Services{
		Auth:   NewAuthService(repos.User, tokens, cfg),
		Device: NewDeviceService(repos.Device, repos.Event, publisher),
	}
}
