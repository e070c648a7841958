package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worksphere/internal/bootstrap"
	authdto "worksphere/internal/modules/auth/dto"
	dashboarddto "worksphere/internal/modules/dashboard/dto"
	"worksphere/internal/platform/config"
	"worksphere/internal/platform/notice"
	profileview "worksphere/internal/ui/views/profile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	home string
	api  string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "worksphere",
		Short:         "WorkSphere freelance marketplace in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.home, "home", "", "home directory holding .worksphere (default: user home)")
	root.PersistentFlags().StringVar(&flags.api, "api", "", "backend auth API base URL")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newLoginCmd(flags))
	root.AddCommand(newRegisterCmd(flags))
	root.AddCommand(newGoogleCmd(flags))
	root.AddCommand(newLogoutCmd(flags))
	root.AddCommand(newWhoAmICmd(flags))
	root.AddCommand(newProfileCmd(flags))
	root.AddCommand(newJobsCmd(flags))
	root.AddCommand(newThemeCmd(flags))
	return root
}

func loadApp(flags *globalFlags, hints io.Writer) (*bootstrap.App, error) {
	cfg, err := config.Load(flags.home)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg.WithAPIBaseURL(flags.api), hints)
}

// withApp runs fn against a freshly wired app and releases it afterwards.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(app *bootstrap.App) error) (err error) {
	app, err := loadApp(flags, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(app)
}

// printNotice is the plain-terminal stand-in for the TUI status bar. Error
// notices become the command's error so the exit status reflects them.
func printNotice(w io.Writer, n notice.Notice) error {
	if n.IsZero() {
		return nil
	}
	if n.Kind == notice.KindError {
		return errors.New(n.Text)
	}
	_, _ = fmt.Fprintln(w, n.Text)
	return nil
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the WorkSphere terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, bootstrap.RunTUI)
		},
	}
}

func newLoginCmd(flags *globalFlags) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				res := app.AuthCLI.Login(context.Background(), email, password)
				return printNotice(cmd.OutOrStdout(), res.Notice)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email (sent as username)")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(flags *globalFlags) *cobra.Command {
	input := authdto.RegisterInput{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a WorkSphere account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				res := app.AuthCLI.Register(context.Background(), input)
				return printNotice(cmd.OutOrStdout(), res.Notice)
			})
		},
	}
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email")
	cmd.Flags().StringVar(&input.Username, "username", "", "username")
	cmd.Flags().StringVar(&input.UserType, "type", "worker", "account type: worker|employer")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (at least 6 characters)")
	cmd.Flags().StringVar(&input.Confirm, "confirm", "", "password confirmation")
	cmd.Flags().BoolVar(&input.AcceptTerms, "agree-terms", false, "agree to the Terms of Service and Privacy Policy")
	return cmd
}

func newGoogleCmd(flags *globalFlags) *cobra.Command {
	var credential string
	cmd := &cobra.Command{
		Use:   "google",
		Short: "Sign in with Google",
		Long:  "Sign in with Google in the browser, or exchange a credential obtained elsewhere with --credential.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				if credential == "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Opening the browser for Google sign-in...")
				}
				res := app.AuthCLI.Google(context.Background(), credential)
				if res.Fallback {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Pass a credential with --credential to sign in manually.")
				}
				return printNotice(cmd.OutOrStdout(), res.Notice)
			})
		},
	}
	cmd.Flags().StringVar(&credential, "credential", "", "Google credential to exchange instead of the browser flow")
	return cmd
}

func newLogoutCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				return app.SessionCLI.Logout(context.Background())
			})
		},
	}
}

func newWhoAmICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached profile and access token claims",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				out := cmd.OutOrStdout()
				who := app.SessionCLI.WhoAmI(context.Background())
				if !who.Authenticated {
					_, _ = fmt.Fprintln(out, "not signed in")
					return nil
				}
				if who.HasUser {
					_, _ = fmt.Fprintf(out, "user: %s (@%s) %s\n", profileview.DisplayName(who.User), who.User.Username, who.User.Email)
					_, _ = fmt.Fprintf(out, "type: %s\n", profileview.UserTypeLabel(who.User.UserType))
				} else {
					_, _ = fmt.Fprintln(out, "user: (no cached profile)")
				}
				claims, err := app.AuthCLI.Claims(context.Background())
				if err != nil {
					_, _ = fmt.Fprintf(out, "token: unreadable (%v)\n", err)
					return nil
				}
				_, _ = fmt.Fprintf(out, "subject: %s\n", claims.Subject)
				if claims.UserID != "" {
					_, _ = fmt.Fprintf(out, "user_id: %s\n", claims.UserID)
				}
				if !claims.ExpiresAt.IsZero() {
					state := "valid"
					if claims.Expired {
						state = "expired"
					}
					_, _ = fmt.Fprintf(out, "expires: %s (%s)\n", claims.ExpiresAt.Local().Format(time.RFC1123), state)
				}
				return nil
			})
		},
	}
}

func newProfileCmd(flags *globalFlags) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile and AI Career Passport"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the profile and passport",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				out := cmd.OutOrStdout()
				passport, loaded := app.DashboardCLI.Passport(context.Background())
				user, ok := app.SessionCLI.CurrentUser(context.Background())
				if !ok {
					_, _ = fmt.Fprintln(out, "no cached profile; run `worksphere login`")
				} else {
					_, _ = fmt.Fprintf(out, "%s\n@%s  %s\n%s\n", profileview.DisplayName(user), user.Username, user.Email, profileview.UserTypeLabel(user.UserType))
				}
				source := "backend"
				if !loaded {
					source = "defaults"
				}
				_, _ = fmt.Fprintf(out, "trust score: %s\nlevel: %d\nxp: %d\n(passport from %s)\n",
					profileview.FormatScore(passport.TrustScore), passport.Level, passport.XPPoints, source)
				return nil
			})
		},
	})

	profile.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Fetch the profile from the backend and update the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				user, err := app.AuthCLI.RefreshProfile(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "refreshed %s (@%s)\n", profileview.DisplayName(user), user.Username)
				return nil
			})
		},
	})

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the passport as a markdown note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				user, ok := app.SessionCLI.CurrentUser(context.Background())
				if !ok {
					return errors.New("no cached profile; run `worksphere login` first")
				}
				path, err := app.DashboardCLI.ExportPassport(context.Background(), dashboarddto.ExportInput{
					Path:     outPath,
					Name:     profileview.DisplayName(user),
					Username: user.Username,
					Email:    user.Email,
					UserType: user.UserType,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported passport to %s\n", path)
				return nil
			})
		},
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "file or directory to write (default: <username>-passport.md)")
	profile.AddCommand(exportCmd)

	return profile
}

func newJobsCmd(flags *globalFlags) *cobra.Command {
	jobs := &cobra.Command{Use: "jobs", Short: "Recommended jobs"}

	jobs.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recommended jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				list, err := app.DashboardCLI.ListJobs(context.Background())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					_, _ = fmt.Fprintln(out, "no jobs")
					return nil
				}
				for _, job := range list {
					_, _ = fmt.Fprintf(out, "#%d  %s\n    %s | %s | %s | %d proposals\n    %s\n",
						job.ID, job.Title, job.Budget, job.Type, job.Duration, job.Proposals, strings.Join(job.Skills, ", "))
				}
				return nil
			})
		},
	})

	var jobID int
	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for a job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				res := app.DashboardCLI.Apply(context.Background(), jobID)
				return printNotice(cmd.OutOrStdout(), res.Notice)
			})
		},
	}
	applyCmd.Flags().IntVar(&jobID, "id", 0, "job id")
	_ = applyCmd.MarkFlagRequired("id")
	jobs.AddCommand(applyCmd)

	return jobs
}

func newThemeCmd(flags *globalFlags) *cobra.Command {
	theme := &cobra.Command{Use: "theme", Short: "Light or dark theme"}

	theme.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.SessionCLI.Theme(context.Background()))
				return nil
			})
		},
	})

	theme.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				name, err := app.SessionCLI.ToggleTheme(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			})
		},
	})

	theme.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Set the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *bootstrap.App) error {
				return app.SessionCLI.SetTheme(context.Background(), args[0])
			})
		},
	})

	return theme
}
