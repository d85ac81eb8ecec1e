package api

import (
	"net/http"

	"goledger/api/handlers"
	"goledger/ledger"
	"goledger/logging"
)

// Server is the HTTP transport over one ledger instance. It owns the
// ledger's lifetime; handlers only ever touch it through the engine's
// operations.
type Server struct {
	ledger *ledger.Ledger
	nodeID string
	addr   string
	mux    *http.ServeMux
}

// NewServer wires a ledger and a node identifier into a ready-to-serve
// HTTP server on addr.
func NewServer(l *ledger.Ledger, nodeID, addr string) *Server {
	server := &Server{
		ledger: l,
		nodeID: nodeID,
		addr:   addr,
		mux:    http.NewServeMux(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP endpoints
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/mine", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleMine(w, r, s.ledger)
	})
	s.mux.HandleFunc("/chain", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleChain(w, r, s.ledger)
	})
	s.mux.HandleFunc("/last_block", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleLastBlock(w, r, s.ledger)
	})
}

// Handler exposes the route table, mainly for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start begins serving HTTP requests (blocks forever)
func (s *Server) Start() error {
	logging.GetLogIns("api").WithField("addr", s.addr).
		WithField("node_id", s.nodeID).Info("starting HTTP server")
	return http.ListenAndServe(s.addr, s.mux)
}
