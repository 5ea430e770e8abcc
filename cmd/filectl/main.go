package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/yourname/file_storage_lite/pkg/storageclient"
)

const usage = `usage: filectl [-addr URL] <command> [args]

commands:
  upload <path> [name]   upload a local file
  list                   list stored files
  get <name> [dest]      download a file (dest defaults to ./<name>, "-" for stdout)
  metrics                print storage metrics
  health                 check service health
`

func main() {
	addr := flag.String("addr", envOr("STORAGE_URL", "http://localhost:8000"), "storage service base URL")
	timeout := flag.Duration("timeout", 5*time.Minute, "request timeout")
	quiet := flag.Bool("q", false, "disable progress output")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var progress io.Writer = os.Stderr
	if *quiet {
		progress = nil
	}
	cli := storageclient.New(*addr, storageclient.Options{Progress: progress})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cli, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cli storageclient.Client, args []string) error {
	switch args[0] {
	case "upload":
		if len(args) < 2 {
			return fmt.Errorf("upload: path is required")
		}
		return upload(ctx, cli, args[1], optArg(args, 2, filepath.Base(args[1])))
	case "list":
		res, err := cli.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(res)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("get: name is required")
		}
		return download(ctx, cli, args[1], optArg(args, 2, args[1]))
	case "metrics":
		res, err := cli.Metrics(ctx)
		if err != nil {
			return err
		}
		return printJSON(res)
	case "health":
		if err := cli.Health(ctx); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func upload(ctx context.Context, cli storageclient.Client, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	res, err := cli.Upload(ctx, name, f, info.Size())
	if err != nil {
		return err
	}
	return printJSON(res)
}

func download(ctx context.Context, cli storageclient.Client, name, dest string) error {
	if dest == "-" {
		_, err := cli.Download(ctx, name, os.Stdout)
		return err
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	_, err = cli.Download(ctx, name, f)
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(dest)
		return err
	}
	return closeErr
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func optArg(args []string, i int, def string) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return def
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
