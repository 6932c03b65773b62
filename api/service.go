package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/bbforum/db/sqlc"
	"github.com/Drolfothesgnir/bbforum/markdown"
	"github.com/Drolfothesgnir/bbforum/markup"
	"github.com/Drolfothesgnir/bbforum/sanitize"
	"github.com/Drolfothesgnir/bbforum/tmpstore"
	"github.com/Drolfothesgnir/bbforum/token"
	"github.com/Drolfothesgnir/bbforum/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	RenderURL              = "/render"
	RenderBodyURL          = "/render/body"
	UsersEmojiSettingsURL  = "/users/:id/emoji-settings"
	UpdateEmojiSettingsURL = "/emoji-settings"
)

var (
	// api errors
	ErrInvalidParams       = errors.New("invalid params")
	ErrInvalidBody         = errors.New("invalid body")
	ErrInputTooLong        = errors.New("input is too long")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrMissingAuthHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthHeader   = errors.New("invalid authorization header format")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
	ErrInternal            = errors.New("internal error")
)

type Service struct {
	config      util.Config
	store       db.Store
	tokenMaker  token.Maker
	renderCache tmpstore.Store
	renderer    *markup.Renderer
	sanitizer   sanitize.Sanitizer
	server      *http.Server
	router      *gin.Engine
}

// Returns new service instance with provided config, stores and sanitizer.
// The UGC sanitize policy is used when sanitizer is nil.
func NewService(
	config util.Config,
	store db.Store,
	tokenMaker token.Maker,
	rs tmpstore.Store,
	sanitizer sanitize.Sanitizer,
) (*Service, error) {
	if sanitizer == nil {
		sanitizer = sanitize.NewPolicy()
	}

	if config.MaxInputLength <= 0 {
		config.MaxInputLength = util.DefaultMaxInputLength
	}

	service := &Service{
		config:      config,
		store:       store,
		tokenMaker:  tokenMaker,
		renderCache: rs,
		renderer:    markup.NewRenderer(config.Routes(), markdown.CommonMark{}),
		sanitizer:   sanitizer,
	}

	host, port, err := config.ExtractHostPort()
	if err != nil {
		return nil, err
	}

	addr := host
	if port != "" {
		addr = net.JoinHostPort(host, port)
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
