package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
	chiTransport "github.com/kailas-cloud/shopassist/internal/transport/chi"
	indexinguc "github.com/kailas-cloud/shopassist/internal/usecase/indexing"
	"github.com/kailas-cloud/shopassist/internal/version"
)

// sampleQuery is the query the run command answers.
const sampleQuery = "What ingredients should I buy to make a nice chicken curry?"

func openApp(ctx context.Context, cmd *cli.Command) (*app, error) {
	return newApp(ctx, cmd.String("env"), cmd.String("config"))
}

// openStoreApp is openApp for commands that cannot do anything without the database.
func openStoreApp(ctx context.Context, cmd *cli.Command) (*app, error) {
	a, err := openApp(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if a.unavailable != nil {
		a.Close()
		return nil, a.unavailable
	}
	return a, nil
}

// stdout is where command reports go; the root command's Writer defaults to os.Stdout.
func stdout(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

// runAction ensures the index (indexing the catalog only when it was just created),
// searches the sample query, prints the hits and generates instructions for them.
// Setup failures are logged; the command always prints a report.
func runAction(ctx context.Context, cmd *cli.Command) error {
	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.unavailable != nil {
		printResults(stdout(cmd), result.Failed(a.unavailable))
		return nil
	}

	if _, err := a.setup(ctx, indexinguc.SetupOptions{}); err != nil {
		a.logger.Error("Index setup failed", zap.Error(err))
	}

	return answer(ctx, stdout(cmd), a, sampleQuery, 0)
}

func indexAction(ctx context.Context, cmd *cli.Command) error {
	a, err := openStoreApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.setup(ctx, indexinguc.SetupOptions{
		Force:    cmd.Bool("force"),
		Recreate: cmd.Bool("recreate"),
	})
	if err != nil {
		return err
	}

	if res.Created {
		if def, err := a.inventory.Schema(ctx); err == nil {
			fmt.Fprintf(stdout(cmd), "Created index: %s\n", def)
		}
	}
	if !res.Indexed {
		fmt.Fprintf(stdout(cmd), "Index %q already exists; use --force to re-index.\n", a.cfg.Index.Name)
		return nil
	}
	fmt.Fprintf(stdout(cmd), "Indexed %d products (%d skipped, %d failed).\n",
		res.Report.Indexed(), res.Report.Skipped(), res.Report.Failed())
	for _, item := range res.Report.Items {
		if item.Err() != nil {
			fmt.Fprintf(stdout(cmd), "  %s: %s: %v\n", item.Name(), item.Status(), item.Err())
		}
	}
	return nil
}

func searchAction(ctx context.Context, cmd *cli.Command) error {
	query, err := queryArg(cmd)
	if err != nil {
		return err
	}

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.unavailable != nil {
		printResults(stdout(cmd), result.Failed(a.unavailable))
		return nil
	}
	printResults(stdout(cmd), a.search.Search(ctx, query, int(cmd.Int("top-k"))))
	return nil
}

func askAction(ctx context.Context, cmd *cli.Command) error {
	query, err := queryArg(cmd)
	if err != nil {
		return err
	}

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.unavailable != nil {
		printResults(stdout(cmd), result.Failed(a.unavailable))
		return nil
	}
	return answer(ctx, stdout(cmd), a, query, int(cmd.Int("top-k")))
}

// answer prints the hits for query and, when there are any, the generated instructions.
func answer(ctx context.Context, w io.Writer, a *app, query string, topK int) error {
	res := a.search.Search(ctx, query, topK)
	printResults(w, res)

	if !res.Empty() {
		printInstructions(w, a.assistant.GenerateInstructions(ctx, res.Hits()))
	}
	return nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	a, err := openStoreApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.setup(ctx, indexinguc.SetupOptions{}); err != nil {
		a.logger.Error("Index setup failed", zap.Error(err))
	}

	server := chiTransport.NewServer(a.search, a.assistant, a.health, a.logger)

	addr := fmt.Sprintf(":%d", a.cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(a.cfg.Auth.APIKeys),
		ReadTimeout:  time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(a.cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server",
			zap.String("addr", addr),
			zap.String("version", version.Version),
			zap.String("commit", version.Commit),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	a.logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Error during shutdown", zap.Error(err))
	}

	a.logger.Info("Server stopped gracefully")
	return nil
}

func queryArg(cmd *cli.Command) (string, error) {
	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return "", errors.New("query argument is required")
	}
	return query, nil
}
