package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// errStreamDone stops reading after the table is deleted
var errStreamDone = errors.New("stream done")

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [id]",
		Short: "Follow a table live",
		Long: `Connect to the table's event stream and print the table after every change.

The stream ends when the table is deleted. Press Ctrl+C to disconnect.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.TableID = args[0]
			}
			id, err := cfg.RequireTable()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watchTable(ctx, id, NewOutput(cfg.Output, cfg.NoColor))
		},
	}
}

func watchTable(ctx context.Context, id string, out *Output) error {
	url := strings.TrimSuffix(cfg.ServerURL, "/") + tablePath(id, "events")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// No timeout for streams
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Code != "" {
			return &errResp.Error
		}
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	err = readEvents(resp.Body, func(event, data string) error {
		return printTableEvent(out, event, data)
	})
	if ctx.Err() != nil || errors.Is(err, errStreamDone) {
		return nil
	}
	return err
}

func printTableEvent(out *Output, event, data string) error {
	switch event {
	case "table":
		var table Table
		if err := json.Unmarshal([]byte(data), &table); err != nil {
			return fmt.Errorf("bad table event: %w", err)
		}
		if out.format != "json" {
			_, _ = fmt.Fprintln(out.w, strings.Repeat("-", 40))
		}
		out.Print(table)
	case "deleted":
		out.PrintMessage("Table deleted")
		return errStreamDone
	}
	return nil
}

// readEvents parses a server-sent event stream, calling fn for each complete event
func readEvents(r io.Reader, fn func(event, data string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentEvent string
	var dataLines []string

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event: "):
			currentEvent = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		case line == "":
			// End of event
			if currentEvent != "" {
				if err := fn(currentEvent, strings.Join(dataLines, "\n")); err != nil {
					return err
				}
			}
			currentEvent = ""
			dataLines = nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream error: %w", err)
	}
	return nil
}
