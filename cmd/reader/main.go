// Command reader simulates a field device against a door-keeper server.
//
// Usage:
//
//	reader tap -uid 04A1B2C3 [-door open|close] [-code 123456]
//	reader keyauth -key 1234123456
//	reader cloned -uid 04A1B2C3
//	reader version
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-door-keeper/internal/adapter"
	"github.com/MKhiriev/go-door-keeper/internal/client"
	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

func main() {
	log := logger.NewLogger("door-keeper-reader")
	cfg, err := config.GetReaderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	access, err := adapter.NewHTTPAccessClient(cfg.ServerURL, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating access client")
	}

	if err = run(ctx, cfg, access, os.Args[1], os.Args[2:], log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ReaderConfig, access adapter.AccessClient, cmd string, args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	uid := fs.String("uid", "", "tag uid")
	door := fs.String("door", string(models.DoorOpen), "door command: open or close")
	code := fs.String("code", "", "secondary code; prompted when empty")
	key := fs.String("key", "", "keypad entry: PIN followed by TOTP code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reader := client.NewReader(access, cfg.DeviceID, prompter(*code), log)

	switch cmd {
	case "tap":
		tag, err := client.LoadTag(cfg.StatePath, *uid)
		if err != nil {
			return err
		}
		resp, err := reader.Tap(ctx, tag, models.DoorCommand(*door))
		if saveErr := tag.Save(cfg.StatePath); saveErr != nil {
			log.Err(saveErr).Msg("error saving tag state")
		}
		printResponse(resp)
		return err
	case "keyauth":
		resp, err := reader.KeyAuth(ctx, *key)
		printResponse(resp)
		return err
	case "cloned":
		resp, err := reader.ReportCloned(ctx, client.NewTag(*uid))
		printResponse(resp)
		return err
	case "version":
		v, err := access.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("server version: %s (%s, %s)\n", v.Version, v.Date, v.Commit)
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// prompter returns fixed when set and otherwise reads a line from stdin.
func prompter(fixed string) client.CodePrompt {
	return func(_ context.Context, digits int) (string, error) {
		if fixed != "" {
			return fixed, nil
		}
		fmt.Printf("enter %d-digit code: ", digits)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}

func printResponse(resp models.Response) {
	if resp.Status == "" {
		return
	}
	fmt.Printf("status: %s", resp.Status)
	if resp.Message != "" {
		fmt.Printf(" (%s)", resp.Message)
	}
	fmt.Println()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: reader tap|keyauth|cloned|version [flags]")
}
