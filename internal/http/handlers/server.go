package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
	"github.com/rogerio-castellano/medicine-inventory/internal/stock"
)

// Server holds the read-only repositories and collaborators shared by every
// handler. It is built once before serving starts.
type Server struct {
	medicines    repo.MedicineRepository
	batches      repo.BatchRepository
	transactions repo.TransactionRepository
	calc         *stock.Calculator
	log          *zap.Logger
	now          func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithClock replaces the wall clock used to compute today's date.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

func NewServer(repos repo.Repositories, log *zap.Logger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		medicines:    repos.Medicines,
		batches:      repos.Batches,
		transactions: repos.Transactions,
		calc:         stock.NewCalculator(repos.Batches),
		log:          log,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
