package server

import (
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/config"
	"github.com/NeuralTrust/FormGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	AdminServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	AdminServer struct {
		*BaseServer
	}
)

func NewAdminServer(di AdminServerDI) *AdminServer {
	return &AdminServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *AdminServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.AdminPort)
	s.Logger.WithField("addr", addr).Info("starting admin server")
	return s.Router.Listen(addr)
}
