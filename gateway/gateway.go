package gateway

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"

	"github.com/gqlbridge/gqlbridge/config"
	logger "github.com/gqlbridge/gqlbridge/log"
	"github.com/gqlbridge/gqlbridge/upstream"
)

var (
	log     = logger.Get()
	mainLog = log.WithField("prefix", "gateway")
)

// Gateway owns the HTTP surface: it decodes inbound request JSON, hands
// it to the upstream client and writes envelopes back out. It holds no
// per-request state.
type Gateway struct {
	conf   config.Config
	client *upstream.Client
	router *mux.Router
}

func New(conf config.Config) *Gateway {
	gw := &Gateway{
		conf:   conf,
		client: upstream.NewClient(conf.Upstream),
	}
	gw.router = gw.buildRouter()
	return gw
}

func (gw *Gateway) buildRouter() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/graphql", gw.graphqlHandler).Methods(http.MethodPost)
	api.HandleFunc("/graphql/docs", gw.docsHandler).Methods(http.MethodGet)
	api.HandleFunc("/bulk", gw.bulkHandler).Methods(http.MethodPost)

	r.HandleFunc("/health", gw.healthHandler).Methods(http.MethodGet)

	return r
}

// Handler returns the full middleware chain wrapped around the router.
func (gw *Gateway) Handler() http.Handler {
	chain := alice.New(
		gw.recoveryMiddleware,
		gw.requestIDMiddleware,
		gw.corsMiddleware,
	)
	return chain.Then(gw.router)
}
