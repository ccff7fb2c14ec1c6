package cmd

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the HTTP route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := routeRows()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Method", "Path", "Middlewares"}, rows, 3))
			return nil
		},
	}
}

// routeRows wires the router against no database or upstream; handlers are never invoked.
func routeRows() ([][]string, error) {
	log := zap.NewNop()
	config := &utils.Config{
		Catalog: utils.CatalogConfig{MaxConcurrency: 1},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
	app := wire.Wiring(repository.NewRepository(nil, log), nil, config, log)

	var rows [][]string
	err := chi.Walk(app.Router, func(method, route string, _ http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		rows = append(rows, []string{method, strings.TrimSuffix(route, "/*"), fmt.Sprint(len(middlewares))})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk routes: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i][1] == rows[j][1] {
			return rows[i][0] < rows[j][0]
		}
		return rows[i][1] < rows[j][1]
	})

	return rows, nil
}
