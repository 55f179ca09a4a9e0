package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theDahunsiDavid/Polly-API/client"
	"github.com/theDahunsiDavid/Polly-API/cliparse"
	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/transport"
)

func main() {
	// Parse configuration
	cfg, args, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	// Optional Prometheus endpoint, mostly useful with the watch command
	var metrics *transport.Metrics
	if cfg.MetricsAddr != "" {
		metrics = transport.NewMetrics(prometheus.DefaultRegisterer)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				slog.Error("metrics listener closed", "error", err)
			}
		}()
		slog.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	opts := []transport.Option{transport.WithTimeout(cfg.Timeout)}
	if metrics != nil {
		opts = append(opts, transport.WithMetrics(metrics))
	}
	api := client.New(cfg.BaseURL, client.WithTransport(transport.NewHTTPClient(opts...)))

	if err := run(api, cfg, args[0], args[1:]); err != nil {
		slog.Error("command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func run(api *client.Client, cfg cliparse.Config, command string, args []string) error {
	switch command {
	case "list":
		skip, err := intArgOr(args, 0, 0, "skip")
		if err != nil {
			return err
		}
		limit, err := intArgOr(args, 1, 10, "limit")
		if err != nil {
			return err
		}
		polls, err := api.Polls(skip, limit)
		if err != nil {
			return err
		}
		printPolls(polls)
		return nil

	case "all":
		polls, err := api.FetchAllPolls(cfg.BatchSize)
		if err != nil {
			return err
		}
		printPolls(polls)
		fmt.Printf("%s polls total\n", humanize.Comma(int64(len(polls))))
		return nil

	case "search":
		if len(args) == 0 {
			return errors.New("missing keyword argument")
		}
		skip, err := intArgOr(args, 1, 0, "skip")
		if err != nil {
			return err
		}
		limit, err := intArgOr(args, 2, 100, "limit")
		if err != nil {
			return err
		}
		polls, err := api.SearchPolls(args[0], skip, limit)
		if err != nil {
			return err
		}
		if len(polls) == 0 {
			fmt.Printf("No polls matching %q\n", args[0])
			return nil
		}
		printPolls(polls)
		return nil

	case "poll":
		pollID, err := intArg(args, 0, "poll id")
		if err != nil {
			return err
		}
		poll, err := api.Poll(pollID)
		if err != nil {
			return err
		}
		printPoll(poll)
		return nil

	case "results":
		pollID, err := intArg(args, 0, "poll id")
		if err != nil {
			return err
		}
		results, err := api.Results(pollID)
		if err != nil {
			return err
		}
		fmt.Printf("#%d %s\n", results.PollID, results.Question)
		for _, option := range results.Results {
			fmt.Printf("    [%d] %-30s %s votes\n", option.OptionID, option.Text, humanize.Comma(int64(option.VoteCount)))
		}
		return nil

	case "winner":
		pollID, err := intArg(args, 0, "poll id")
		if err != nil {
			return err
		}
		winner, err := api.Winner(pollID)
		if err != nil {
			return err
		}
		if winner == nil {
			fmt.Println("No votes cast yet")
			return nil
		}
		fmt.Printf("Winner: [%d] %s with %s votes\n", winner.OptionID, winner.Text, humanize.Comma(int64(winner.VoteCount)))
		return nil

	case "stats":
		pollID, err := intArg(args, 0, "poll id")
		if err != nil {
			return err
		}
		stats, err := api.Stats(pollID)
		if err != nil {
			return err
		}
		printStats(stats)
		return nil

	case "watch":
		return watch(api, args)

	case "register":
		if len(args) < 2 {
			return errors.New("usage: register <username> <password>")
		}
		user, err := api.Register(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s with user id %d\n", user.Username, user.ID)
		return nil

	case "vote":
		pollID, err := intArg(args, 0, "poll id")
		if err != nil {
			return err
		}
		optionID, err := intArg(args, 1, "option id")
		if err != nil {
			return err
		}
		token, err := requireToken(cfg)
		if err != nil {
			return err
		}
		vote, err := api.Vote(pollID, optionID, token)
		if err != nil {
			return err
		}
		fmt.Printf("Vote #%d recorded for option %d\n", vote.ID, vote.OptionID)
		return nil

	case "create":
		if len(args) < 3 {
			return errors.New("usage: create <question> <option> <option> [option...]")
		}
		token, err := requireToken(cfg)
		if err != nil {
			return err
		}
		poll, err := api.NewPoll(args[0], args[1:], token)
		if err != nil {
			return err
		}
		fmt.Printf("Created poll #%d\n", poll.ID)
		printPoll(poll)
		return nil

	case "delete":
		pollID, err := intArg(args, 0, "poll id")
		if err != nil {
			return err
		}
		token, err := requireToken(cfg)
		if err != nil {
			return err
		}
		if err := api.RemovePoll(pollID, token); err != nil {
			return err
		}
		fmt.Printf("Deleted poll #%d\n", pollID)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// watch reprints a poll's statistics every few seconds until interrupted.
func watch(api *client.Client, args []string) error {
	pollID, err := intArg(args, 0, "poll id")
	if err != nil {
		return err
	}
	seconds, err := intArgOr(args, 1, 5, "interval")
	if err != nil {
		return err
	}
	if seconds < 1 {
		return errors.New("interval must be at least 1 second")
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(seconds) * time.Second)
	defer ticker.Stop()

	for {
		stats, err := api.Stats(pollID)
		if err != nil {
			return err
		}
		fmt.Printf("--- %s ---\n", time.Now().Format(time.TimeOnly))
		printStats(stats)

		select {
		case <-ctrlc:
			return nil
		case <-ticker.C:
		}
	}
}

func printPolls(polls []models.Poll) {
	for _, poll := range polls {
		printPoll(poll)
	}
}

func printPoll(poll models.Poll) {
	fmt.Printf("#%d %s (created %s)\n", poll.ID, poll.Question, prettyTime(poll.CreatedAt))
	for _, option := range poll.Options {
		fmt.Printf("    [%d] %s\n", option.ID, option.Text)
	}
}

func printStats(stats models.Statistics) {
	fmt.Printf("#%d %s\n", stats.PollID, stats.Question)
	fmt.Printf("Total votes: %s across %d options\n", humanize.Comma(int64(stats.TotalVotes)), stats.OptionsCount)
	for _, option := range stats.Options {
		marker := "  "
		if stats.Winner != nil && option.OptionID == stats.Winner.OptionID {
			marker = "* "
		}
		fmt.Printf("%s[%d] %-30s %5.1f%% (%s votes)\n",
			marker, option.OptionID, option.Text, option.Percentage, humanize.Comma(int64(option.VoteCount)))
	}
}

// prettyTime renders the service's timestamp strings as relative time,
// falling back to the raw string when it cannot be parsed.
func prettyTime(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return humanize.Time(ts)
		}
	}
	return s
}

func intArg(args []string, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, args[i])
	}
	return n, nil
}

func intArgOr(args []string, i, fallback int, name string) (int, error) {
	if i >= len(args) {
		return fallback, nil
	}
	return intArg(args, i, name)
}

func requireToken(cfg cliparse.Config) (string, error) {
	if cfg.AccessToken == "" {
		return "", errors.New("an access token is required (use -token or POLLY_ACCESS_TOKEN)")
	}
	return cfg.AccessToken, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `polly - command line client for the Polly polling service

Usage: polly [flags] <command> [arguments]

Commands:
  list [skip [limit]]                one page of polls
  all                                every poll, paginated
  search <keyword> [skip [limit]]    polls whose question matches
  poll <id>                          one poll
  results <id>                       tallied results
  winner <id>                        winning option
  stats <id>                         percentages and totals
  watch <id> [seconds]               reprint stats until Ctrl-C
  register <username> <password>     create an account
  vote <poll-id> <option-id>         cast a vote (needs token)
  create <question> <opt> <opt>...   create a poll (needs token)
  delete <poll-id>                   delete a poll (needs token)

Flags:
  -u <url>        API base URL (default http://localhost:8000)
  -token <tok>    Bearer access token
  -timeout <sec>  Request timeout in seconds (default 30)
  -batch <n>      Page size for the all command (default 50)
  -metrics <addr> Serve Prometheus metrics on this address
  -v              Debug logging
`)
}
