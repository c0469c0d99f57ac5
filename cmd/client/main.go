package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"riderequest/config"
	"riderequest/pkg/client"
	"riderequest/pkg/models"
)

const usage = `Usage:
  client submit <source> <destination> <user_id>
  client getall

Example: client submit "123 Main St" "456 Oak Ave" "user123"
`

type gateway interface {
	Submit(ctx context.Context, source, dest, userID string) (*models.RideRequestResponse, error)
	GetAll(ctx context.Context) (*models.RideRequestListResponse, error)
}

func main() {
	cfg := config.Load()
	c := client.New(cfg.ServerURL, cfg.ClientTimeout)
	os.Exit(run(context.Background(), os.Args[1:], c, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, gw gateway, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return 0
	}

	switch args[0] {
	case "submit":
		if len(args) < 4 {
			fmt.Fprintln(stderr, "Error: missing parameters")
			fmt.Fprint(stderr, usage)
			return 2
		}
		source, dest, userID := args[1], args[2], args[3]
		fmt.Fprintf(stdout, "Submitting ride request...\nSource: %s\nDestination: %s\nUser ID: %s\n", source, dest, userID)

		resp, err := gw.Submit(ctx, source, dest, userID)
		if err != nil {
			printError(stderr, "Error submitting ride request", err)
			return 1
		}
		fmt.Fprintln(stdout, "Success!")
		printJSON(stdout, resp)
		return 0

	case "getall":
		fmt.Fprintln(stdout, "Fetching all ride requests...")

		resp, err := gw.GetAll(ctx)
		if err != nil {
			printError(stderr, "Error fetching ride requests", err)
			return 1
		}
		fmt.Fprintf(stdout, "Found %d ride requests\n", resp.Count)
		printJSON(stdout, resp.Data)
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		fmt.Fprint(stderr, usage)
		return 2
	}
}

func printError(w io.Writer, title string, err error) {
	fmt.Fprintln(w, title+":")
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		fmt.Fprintf(w, "Status: %d\n", httpErr.StatusCode)
		fmt.Fprintf(w, "Message: %s\n", httpErr.Message)
		return
	}
	fmt.Fprintf(w, "Message: %v\n", err)
}

func printJSON(w io.Writer, v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%+v\n", v)
		return
	}
	fmt.Fprintln(w, string(out))
}
