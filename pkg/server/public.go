package server

import (
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/config"
	"github.com/NeuralTrust/FormGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	PublicServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	PublicServer struct {
		*BaseServer
	}
)

// NewPublicServer serves the visitor facing endpoints.
func NewPublicServer(di PublicServerDI) *PublicServer {
	return &PublicServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *PublicServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.PublicPort)
	s.Logger.WithField("addr", addr).Info("starting public server")
	return s.Router.Listen(addr)
}
