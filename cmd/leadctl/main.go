// Command leadctl submits one lead through the relay the same way the
// site forms do.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/nxtgenhub/lead-relay/internal/leadclient"
	"github.com/nxtgenhub/lead-relay/internal/logger"
)

const (
	exitOK         = 0
	exitInvalid    = 1
	exitSubmitFail = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("leadctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		kind       = fs.String("kind", string(leadclient.KindExpert), "form type: expert, onboarding or contact")
		configPath = fs.String("config", "", "optional TOML file with backend_url, timeout and [brand]")
		backend    = fs.String("backend", "", "relay API base URL (overrides the config file)")
		timeout    = fs.Duration("timeout", 0, "submit timeout (overrides the config file)")
		logLevel   = fs.String("log-level", "error", "debug, info, warn or error")
		f          leadclient.Fields
	)
	fs.StringVar(&f.Name, "name", "", "full name")
	fs.StringVar(&f.Email, "email", "", "email address")
	fs.StringVar(&f.Company, "company", "", "company or team name")
	fs.StringVar(&f.Phone, "phone", "", "phone number")
	fs.StringVar(&f.Role, "role", "", "role (onboarding)")
	fs.StringVar(&f.Timeline, "timeline", "", "timeline (onboarding)")
	fs.StringVar(&f.Message, "message", "", "message (expert, contact)")
	fs.StringVar(&f.Challenges, "challenges", "", "IT goals or challenges (onboarding)")

	if err := fs.Parse(args); err != nil {
		return exitInvalid
	}
	logger.InitWriter(stderr, *logLevel)

	k := leadclient.Kind(*kind)
	if !k.Valid() {
		fmt.Fprintf(stderr, "unknown form type %q\n", *kind)
		return exitInvalid
	}

	cfg, err := readConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}
	if *backend != "" {
		cfg.BackendURL = *backend
	}

	submitTimeout := 30 * time.Second
	if cfg.Timeout != "" {
		if submitTimeout, err = time.ParseDuration(cfg.Timeout); err != nil {
			fmt.Fprintf(stderr, "invalid timeout %q: %v\n", cfg.Timeout, err)
			return exitInvalid
		}
	}
	if *timeout > 0 {
		submitTimeout = *timeout
	}

	client := leadclient.NewClient(cfg.BackendURL)
	form := leadclient.NewForm(k, client, cfg.Brand)
	form.Fields = f

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	if form.Submit(ctx) {
		fmt.Fprintln(stdout, form.Status)
		if form.ConfirmationSent {
			fmt.Fprintf(stdout, "confirmation sent to %s\n", f.Email)
		}
		return exitOK
	}

	if form.Errors.Fields() {
		printFieldErrors(stderr, form.Errors)
		return exitInvalid
	}
	fmt.Fprintln(stderr, form.Errors[leadclient.SubmitKey])
	return exitSubmitFail
}

func printFieldErrors(w io.Writer, errs leadclient.Errors) {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, errs[k])
	}
}
