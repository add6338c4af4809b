package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/config"
	"github.com/nao1215/osintnexus/internal/tor"
)

// backendClient is an API client together with the embedded Tor daemon it
// may depend on.
type backendClient struct {
	*api.Client

	embedded *tor.EmbeddedTor
	logger   *slog.Logger
}

// Close releases the client and stops the embedded Tor daemon, if any.
func (b *backendClient) Close() {
	b.Client.Close()
	if b.embedded == nil {
		return
	}
	b.logger.Info("stopping embedded Tor daemon...")
	if err := b.embedded.Stop(); err != nil {
		b.logger.Error("failed to stop embedded Tor", "error", err)
	}
}

// newBackendClient creates the API client for cfg. With --proxy the requests
// go through that SOCKS5 proxy, with --tor through a freshly started embedded
// Tor daemon, otherwise directly. Progress messages go to out.
func newBackendClient(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) (*backendClient, error) {
	opts := []api.Option{
		api.WithTimeout(cfg.Timeout),
		api.WithHeaders(cfg.Headers),
		api.WithUserAgent(cfg.UserAgent),
		api.WithLogger(logger),
	}
	bc := &backendClient{logger: logger}

	switch {
	case cfg.ProxyAddress != "":
		dialer, err := tor.NewDialer(cfg.ProxyAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", cfg.ProxyAddress, err)
		}
		if err := dialer.Probe(ctx); err != nil {
			return nil, fmt.Errorf("proxy check failed (make sure a SOCKS5 proxy is running at %s): %w",
				cfg.ProxyAddress, err)
		}
		logger.Info("SOCKS5 proxy verified", "address", cfg.ProxyAddress)
		opts = append(opts, api.WithTransport(dialer.Transport()))

	case cfg.UseTor:
		embedded, dialer, err := startEmbeddedTor(ctx, cfg, logger, out)
		if err != nil {
			return nil, err
		}
		bc.embedded = embedded
		opts = append(opts, api.WithTransport(dialer.Transport()))
	}

	client, err := api.NewClient(cfg.BackendURL, opts...)
	if err != nil {
		if bc.embedded != nil {
			_ = bc.embedded.Stop() //nolint:errcheck // best effort cleanup
		}
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	bc.Client = client

	logger.Info("backend client ready",
		"backend", client.BaseURL(),
		"proxy", cfg.ProxyAddress,
		"tor", cfg.UseTor,
		"timeout", cfg.Timeout,
	)
	return bc, nil
}

// startEmbeddedTor starts an embedded Tor daemon using tornago and returns a
// dialer for its SOCKS port.
func startEmbeddedTor(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) (*tor.EmbeddedTor, *tor.Dialer, error) {
	fmt.Fprintln(out, "Starting embedded Tor daemon...")
	fmt.Fprintf(out, "This may take 1-3 minutes while Tor bootstraps and connects to the network.\n\n")

	embedded := tor.NewEmbeddedTor(tor.WithStartupTimeout(cfg.TorStartupTimeout))
	if err := embedded.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start embedded Tor: %w", err)
	}

	logger.Info("embedded Tor daemon started",
		"socksAddr", embedded.SocksAddr(),
		"controlAddr", embedded.ControlAddr(),
	)

	dialer, err := embedded.Dialer()
	if err != nil {
		_ = embedded.Stop() //nolint:errcheck // best effort cleanup
		return nil, nil, fmt.Errorf("failed to create Tor dialer: %w", err)
	}
	if err := dialer.Probe(ctx); err != nil {
		_ = embedded.Stop() //nolint:errcheck // best effort cleanup
		return nil, nil, fmt.Errorf("embedded Tor proxy check failed: %w", err)
	}

	fmt.Fprintf(out, "Embedded Tor daemon started, SOCKS proxy: %s\n\n", embedded.SocksAddr())
	return embedded, dialer, nil
}
