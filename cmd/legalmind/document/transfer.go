// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/OwinoMichael/AI-Legal-Assistance/client"
	"github.com/OwinoMichael/AI-Legal-Assistance/cmd/legalmind/cli"
)

// --- upload ---

type uploadParams struct {
	cli.JSONOutput
	Case int64 `flag:"case,c" desc:"case ID to attach the document to" default:"0"`
}

func uploadCommand() *cli.Command {
	var params uploadParams

	return &cli.Command{
		Name:    "upload",
		Summary: "Upload a document into a case",
		Description: `Upload a file into a case.

The file streams to the server; nothing is buffered in memory, so
large filings upload fine. A BLAKE3 digest of the exact bytes sent is
computed during the transfer and printed for audit trails.

The configured size limit (upload.max_size_mb) is enforced before any
bytes are sent.`,
		Usage: "legalmind document upload <path> --case CASE [flags]",
		Examples: []cli.Example{
			{
				Description: "Upload a contract into case 42",
				Command:     "legalmind document upload lease-2027.pdf --case 42",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("upload", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("file path is required\n\nUsage: legalmind document upload <path> --case CASE")
			}
			if params.Case <= 0 {
				return cli.Validation("--case is required")
			}
			path := args[0]

			apiClient, cfg, err := cli.Connect()
			if err != nil {
				return err
			}
			if err := cli.RequireSession(apiClient.Store()); err != nil {
				return err
			}

			ctx, cancel := cli.CallContext(ctx, cfg)
			defer cancel()

			progress := uploadProgress(filepath.Base(path))
			result, err := apiClient.UploadDocument(ctx, params.Case, path, cfg.MaxUploadBytes(), progress)
			if err != nil {
				return cli.Classify(err)
			}

			logger.Info("document uploaded",
				"case", params.Case,
				"document", result.Document.ID,
				"file", result.Document.FileName,
				"blake3", result.Digest)

			if done, err := params.EmitJSON(result); done {
				return err
			}
			fmt.Fprintf(os.Stdout, "Uploaded %s as document %d\n", result.Document.FileName, result.Document.ID)
			fmt.Fprintf(os.Stdout, "BLAKE3: %s\n", result.Digest)
			return nil
		},
	}
}

// uploadProgress returns a progress callback that rewrites a percent
// line on stderr. Progress output is suppressed when stderr is not a
// terminal so piped runs stay clean.
func uploadProgress(name string) client.ProgressFunc {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return func(sent, total int64) {
		if total <= 0 {
			return
		}
		fmt.Fprintf(os.Stderr, "\rUploading %s… %3d%%", name, sent*100/total)
		if sent >= total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

// --- download ---

type downloadParams struct {
	Output string `flag:"output,o" desc:"destination path (default: the server file name in the current directory)"`
}

func downloadCommand() *cli.Command {
	var params downloadParams

	return &cli.Command{
		Name:    "download",
		Summary: "Download a stored document",
		Description: `Download a document by its stored file name (as shown by
"legalmind document list"). The content streams to disk; pass
--output - to stream to stdout instead.`,
		Usage: "legalmind document download <file-name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Download to the current directory",
				Command:     "legalmind document download lease-2027.pdf",
			},
			{
				Description: "Download to an explicit path",
				Command:     "legalmind document download lease-2027.pdf --output /tmp/lease.pdf",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("download", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("file name is required\n\nUsage: legalmind document download <file-name>")
			}
			fileName := args[0]

			apiClient, cfg, err := cli.Connect()
			if err != nil {
				return err
			}
			if err := cli.RequireSession(apiClient.Store()); err != nil {
				return err
			}

			ctx, cancel := cli.CallContext(ctx, cfg)
			defer cancel()

			if params.Output == "-" {
				written, err := apiClient.DownloadDocument(ctx, fileName, os.Stdout)
				if err != nil {
					return cli.Classify(err)
				}
				logger.Info("document downloaded", "file", fileName, "bytes", written)
				return nil
			}

			destination := params.Output
			if destination == "" {
				destination = filepath.Base(fileName)
			}

			// O_EXCL: never clobber an existing local file.
			out, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				if os.IsExist(err) {
					return cli.Conflict("%s already exists — pass --output to choose another path", destination)
				}
				return cli.Internal("create %s: %w", destination, err)
			}

			written, err := apiClient.DownloadDocument(ctx, fileName, out)
			if closeErr := out.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				os.Remove(destination)
				return cli.Classify(err)
			}

			logger.Info("document downloaded", "file", fileName, "bytes", written)
			fmt.Fprintf(os.Stdout, "Downloaded %s (%s)\n", destination, formatSize(written))
			return nil
		},
	}
}
