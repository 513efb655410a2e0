// Package shell is the terminal navigation layer of the portal. It turns
// line commands into service calls and prints the outcome.
package shell

import (
	"bufio"
	"campus-hub/domain"
	"campus-hub/services"
	"campus-hub/sink"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gookit/color"
)

// Authenticator is the part of the session the shell drives directly.
type Authenticator interface {
	Login(studentID, email, name string) (domain.Identity, error)
	Logout()
	Require() (domain.Identity, error)
}

type Services struct {
	Session     Authenticator
	Chat        services.IChatService
	Cart        services.ICartService
	Marketplace services.IMarketplaceService
	Profile     services.IProfileService
	Listing     services.IListingService
	Timeline    *sink.Timeline
}

type Branding struct {
	UniversityName      string
	UniversityShortName string
	EmailDomain         string
}

type Shell struct {
	log      *slog.Logger
	out      io.Writer
	svc      Services
	branding Branding
	files    FileReader
	commands map[string]command
}

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// FileReader loads the file behind a path typed by the user.
type FileReader func(path string) (domain.FileDescriptor, error)

func New(log *slog.Logger, out io.Writer, svc Services, branding Branding, files FileReader) *Shell {
	s := &Shell{log: log, out: out, svc: svc, branding: branding, files: files}
	s.commands = map[string]command{
		"help":       {"help", s.help},
		"login":      {"login <student id> <email> <full name>", s.login},
		"logout":     {"logout", s.logout},
		"profile":    {"profile [edit | name <value> | email <value> | save | cancel]", s.profile},
		"courses":    {"courses", s.courses},
		"open":       {"open [course id]", s.open},
		"say":        {"say <text>", s.say},
		"draft":      {"draft <text>", s.draft},
		"send":       {"send", s.send},
		"attach":     {"attach <path>", s.attach},
		"messages":   {"messages", s.messages},
		"categories": {"categories", s.categories},
		"market":     {"market [category] [search]", s.market},
		"add":        {"add <product id>", s.add},
		"qty":        {"qty <product id> <quantity>", s.quantity},
		"remove":     {"remove <product id>", s.remove},
		"cart":       {"cart", s.cart},
		"pay":        {"pay card <number> <MM/YY> <cvv> | pay bkash <number>", s.pay},
		"sell":       {"sell name|description|price|category|image <value> | sell submit | sell form", s.sell},
	}
	return s
}

// Run reads commands from in until EOF, quit or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.banner()
	scanner := bufio.NewScanner(in)
	for {
		s.prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			s.println(color.Gray.Sprint("Bye."))
			return nil
		}
		s.Execute(ctx, line)
	}
}

// Execute runs a single command line. Errors are printed, never returned.
func (s *Shell) Execute(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, ok := s.commands[fields[0]]
	if !ok {
		s.failure(fmt.Errorf("unknown command %q, type help", fields[0]))
		return
	}
	if err := cmd.run(ctx, fields[1:]); err != nil {
		s.log.Debug("Command failed", "command", fields[0], "error", err)
		s.failure(err)
	}
	s.notices()
}

func (s *Shell) banner() {
	s.println(color.New(color.FgCyan, color.OpBold).Sprintf("%s Community Portal", s.branding.UniversityShortName))
	s.println(color.Gray.Sprintf("%s. Sign in with your @%s email. Type help for commands.",
		s.branding.UniversityName, s.branding.EmailDomain))
}

func (s *Shell) prompt() {
	name := "guest"
	if identity, err := s.svc.Session.Require(); err == nil {
		name = identity.Name
	}
	_, _ = fmt.Fprint(s.out, color.Green.Sprintf("%s> ", name))
}

func (s *Shell) notices() {
	if s.svc.Timeline == nil {
		return
	}
	for _, n := range s.svc.Timeline.Drain() {
		s.println(color.Yellow.Sprint(n.Message))
	}
}

func (s *Shell) success(format string, args ...any) {
	s.println(color.Green.Sprintf(format, args...))
}

func (s *Shell) failure(err error) {
	s.println(color.Red.Sprintf("Error: %v", err))
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Shell) help(context.Context, []string) error {
	rows := make([][]string, 0, len(s.commands))
	for _, name := range sortedKeys(s.commands) {
		rows = append(rows, []string{name, s.commands[name].usage})
	}
	s.table([]string{"Command", "Usage"}, rows)
	return nil
}
