package registry

import (
	"context"
	"net"
	"strings"

	"github.com/tidwall/redcon"
	"go.uber.org/zap"
)

// Server exposes a registry document over the Redis protocol so that a
// RedisFetcher can read it. The document is re-fetched on every GET.
type Server struct {
	key    string
	source Fetcher
	logger *zap.Logger
}

func NewServer(key string, source Fetcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{key: key, source: source, logger: logger}
}

// Serve accepts connections on ln until it is closed.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("serving registry", zap.String("addr", ln.Addr().String()), zap.String("key", s.key))
	return redcon.Serve(ln, s.handle, s.accept, s.closed)
}

// ListenAndServe listens on addr and serves until an error occurs.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

func (s *Server) accept(conn redcon.Conn) bool {
	s.logger.Debug("client connected", zap.String("remote", conn.RemoteAddr()))
	return true
}

func (s *Server) closed(conn redcon.Conn, err error) {
	if err != nil {
		s.logger.Debug("client closed", zap.String("remote", conn.RemoteAddr()), zap.Error(err))
	}
}

func (s *Server) handle(conn redcon.Conn, cmd redcon.Command) {
	if len(cmd.Args) == 0 {
		return
	}
	args := make([]string, len(cmd.Args))
	for i, a := range cmd.Args {
		args[i] = string(a)
	}
	name := strings.ToLower(args[0])

	switch name {
	case "ping":
		if len(args) > 1 {
			conn.WriteBulkString(args[1])
			return
		}
		conn.WriteString("PONG")
	case "quit":
		conn.WriteString("OK")
		conn.Close()
	case "get":
		if len(args) != 2 {
			conn.WriteError("ERR wrong number of arguments for 'get' command")
			return
		}
		if args[1] != s.key {
			conn.WriteNull()
			return
		}
		data, err := s.source.Fetch(context.Background())
		if err != nil {
			s.logger.Error("registry read failed", zap.Error(err))
			conn.WriteError("ERR " + err.Error())
			return
		}
		conn.WriteBulk(data)
	case "exists":
		if len(args) != 2 {
			conn.WriteError("ERR wrong number of arguments for 'exists' command")
			return
		}
		if args[1] == s.key {
			conn.WriteInt(1)
			return
		}
		conn.WriteInt(0)
	default:
		conn.WriteError("ERR unknown command '" + args[0] + "'")
	}
}
