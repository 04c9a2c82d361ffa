package main

import (
	"context"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dqkit/dq/internal/demo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dqdemo",
		Short:        "Draggable-boxes demo for the dq library",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		addr    string
		page    string
		watch   bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page and its event socket",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			app, err := demo.NewApp(page, 0, log)
			if err != nil {
				return err
			}
			if watch {
				if page == "" {
					log.Warn("--watch needs --page, ignoring")
				} else {
					go func() {
						err := app.Watch(cmd.Context())
						if err != nil && !errors.Is(err, context.Canceled) {
							log.WithError(err).Warn("watcher stopped")
						}
					}()
				}
			}

			srv := demo.NewServer(app, log)
			log.WithField("addr", addr).Info("listening")
			return http.ListenAndServe(addr, srv.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&page, "page", "", "page file to serve (default: embedded demo page)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the page file on change")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
