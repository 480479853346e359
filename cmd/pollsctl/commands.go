package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type app struct {
	questions ports.QuestionService
	choices   ports.ChoiceService
	tokens    ports.TokenIssuer
	now       func() time.Time
}

type opener func() (*app, func(), error)

func newRootCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pollsctl",
		Short:         "Manage poll questions and choices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newQuestionCmd(open), newChoiceCmd(open), newTokenCmd(open))
	return cmd
}

func withApp(open opener, fn func(cmd *cobra.Command, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := open()
		if err != nil {
			return err
		}
		defer closeFn()
		return fn(cmd, a)
	}
}

func newQuestionCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Create and list questions",
	}

	var (
		text    string
		days    int
		choices []string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a question published --days from now (negative for the past)",
		RunE: withApp(open, func(cmd *cobra.Command, a *app) error {
			q, err := a.questions.Create(cmd.Context(), ports.CreateQuestionInput{
				QuestionText: text,
				PubDate:      a.now().AddDate(0, 0, days),
				Choices:      choices,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), q.ID)
			return nil
		}),
	}
	create.Flags().StringVar(&text, "text", "", "Question text")
	create.Flags().IntVar(&days, "days", 0, "Publication offset in days from now")
	create.Flags().StringArrayVar(&choices, "choice", nil, "Choice text (repeatable)")
	_ = create.MarkFlagRequired("text")

	list := &cobra.Command{
		Use:   "list",
		Short: "List every question, including unpublished ones",
		RunE: withApp(open, func(cmd *cobra.Command, a *app) error {
			questions, err := a.questions.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			now := a.now()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tPUB DATE\tPUBLISHED\tRECENT\tVOTES\tQUESTION")
			for _, q := range questions {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%t\t%d\t%s\n",
					q.ID, q.PubDate.Format(time.RFC3339), q.IsPublished(now), q.WasPublishedRecently(now), q.TotalVotes(), q.QuestionText)
			}
			return tw.Flush()
		}),
	}

	cmd.AddCommand(create, list)
	return cmd
}

func newChoiceCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "choice",
		Short: "Manage choices",
	}

	var questionID, text string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a choice to a question",
		RunE: withApp(open, func(cmd *cobra.Command, a *app) error {
			c, err := a.choices.AddChoice(cmd.Context(), ports.AddChoiceInput{
				QuestionID: questionID,
				ChoiceText: text,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.ID)
			return nil
		}),
	}
	add.Flags().StringVar(&questionID, "question", "", "Question id")
	add.Flags().StringVar(&text, "text", "", "Choice text")
	_ = add.MarkFlagRequired("question")
	_ = add.MarkFlagRequired("text")

	cmd.AddCommand(add)
	return cmd
}

func newTokenCmd(open opener) *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin API bearer token signed with ADMIN_JWT_SECRET",
		RunE: withApp(open, func(cmd *cobra.Command, a *app) error {
			token, err := a.tokens.Issue(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		}),
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "Token subject")
	return cmd
}
