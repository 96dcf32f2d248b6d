package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/courseboard/internal/config"
	"github.com/nfrund/courseboard/internal/database"
	"github.com/nfrund/courseboard/internal/logging"
	"github.com/nfrund/courseboard/internal/seed"
	"github.com/spf13/cobra"
)

var seedOpts = seed.DefaultOptions()

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo course with lessons and learners",
	Long: `Connects to the SurrealDB instance configured in the environment (or .env),
applies the schema and creates an owner account, one published course, its
lessons and a set of enrolled learners. Existing accounts are reused.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.New()
		cfg, err := config.New()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		conn := database.NewConnection(cfg)
		if err := conn.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close(context.Background())

		if err := database.ApplySchema(ctx, conn); err != nil {
			return err
		}

		users, err := database.NewUserStore(conn)
		if err != nil {
			return err
		}
		courses, err := database.NewCourseStore(conn)
		if err != nil {
			return err
		}

		res, err := seed.Run(ctx, users, courses, seedOpts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seeded course %s with %d lessons and %d learners\n", res.Course.ID.String(), res.Lessons, res.Learners)
		fmt.Fprintf(out, "Sign in as %s / %s\n", res.Owner.Email, seedOpts.Password)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedOpts.OwnerEmail, "owner", seedOpts.OwnerEmail, "email of the course owner")
	seedCmd.Flags().StringVar(&seedOpts.Password, "password", seedOpts.Password, "password for every seeded account")
	seedCmd.Flags().IntVar(&seedOpts.Learners, "learners", seedOpts.Learners, "number of learners to enrol")
	seedCmd.Flags().IntVar(&seedOpts.Lessons, "lessons", seedOpts.Lessons, "number of lessons to create")
	rootCmd.AddCommand(seedCmd)
}
