// Package shell is the interactive menu. It reads one line per prompt, calls the
// registry service and prints localized results.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"user-registry/internal/i18n"
	"user-registry/internal/service"
)

// Options configures a Session. Nil fields fall back to discarding output and the default locale.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Printer *i18n.Printer
	Logger  logrus.FieldLogger
}

// Session is one run of the menu loop.
type Session struct {
	ID string

	in     *bufio.Reader
	out    io.Writer
	users  service.UserService
	msg    *i18n.Printer
	logger logrus.FieldLogger
}

func NewSession(users service.UserService, opts Options) *Session {
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	printer := opts.Printer
	if printer == nil {
		printer = i18n.NewPrinter(i18n.DefaultLocale)
	}
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	id := uuid.NewString()
	return &Session{
		ID:     id,
		in:     bufio.NewReader(in),
		out:    out,
		users:  users,
		msg:    printer,
		logger: logger.WithField("session", id),
	}
}

// Run shows the menu until the operator chooses 0 or input ends.
func (s *Session) Run(ctx context.Context) error {
	s.logger.WithField("locale", s.msg.Locale()).Info("session started")
	defer s.logger.Info("session finished")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.print(i18n.MenuBanner)
		s.print(i18n.MenuOptions)
		choice, err := s.prompt(i18n.MenuPrompt)
		if err != nil {
			return s.stop(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.register(ctx)
		case "2":
			err = s.login(ctx)
		case "3":
			err = s.list(ctx)
		case "4":
			err = s.delete(ctx)
		case "0":
			s.print(i18n.Goodbye)
			return nil
		default:
			s.print(i18n.MenuInvalid)
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

// stop ends the loop; end of input is a normal exit.
func (s *Session) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.print(i18n.Goodbye)
		return nil
	}
	return err
}

func (s *Session) print(key string, args ...any) {
	s.msg.Fprintf(s.out, key, args...)
}

func (s *Session) prompt(key string) (string, error) {
	s.print(key)
	return s.readLine()
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// report prints the message for a service error. Unknown errors are logged.
func (s *Session) report(err error) {
	switch {
	case errors.Is(err, service.ErrInvalidIdentity):
		s.print(i18n.InvalidIdentity)
	case errors.Is(err, service.ErrFullNameTaken):
		s.print(i18n.FullNameTaken)
	case errors.Is(err, service.ErrUsernameTaken):
		s.print(i18n.UsernameTaken)
	case errors.Is(err, service.ErrInvalidSex):
		s.print(i18n.InvalidSex)
	case errors.Is(err, service.ErrInvalidAge):
		s.print(i18n.InvalidAge)
	case errors.Is(err, service.ErrUserNotFound):
		s.print(i18n.UserNotFound)
	default:
		s.logger.WithError(err).Error("operation failed")
		s.print(i18n.OperationFailed)
	}
}
