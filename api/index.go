package handler

import (
	"net/http"
	"sync"

	"link/config"
	"link/di"
	"link/shared/logger"
	"link/shared/timezone"
)

var (
	handler     http.HandlerFunc
	handlerOnce sync.Once
)

// Handler is the serverless entrypoint. The route tree is built once per
// instance; every request still opens and drops its own views.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	handlerOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		timezone.Init(cfg)

		handler = di.InitializeService().Adaptor()
	})

	handler(w, r)
}
