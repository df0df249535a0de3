package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/maniic/jobrec/internal/filtering"
	"github.com/maniic/jobrec/internal/findwork"
	"github.com/maniic/jobrec/internal/logger"
	"github.com/maniic/jobrec/internal/matching"
	"github.com/maniic/jobrec/internal/render"
	"github.com/maniic/jobrec/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptSearchAgain     = "Search again"
	PromptReportByCompany = "Report by companies"
	PromptDropPosting     = "Drop a posting and re-rank"
	PromptPostingsToFile  = "Dump postings to file"
	PromptQuit            = "Quit"
	PromptBack            = "back"

	apiKeyEnv = "FINDWORK_API_KEY"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSearchAgain, PromptReportByCompany, PromptDropPosting, PromptPostingsToFile, PromptQuit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the jobrec main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("once", "o", false, "run a single search with skills from the config and exit")
	runCmd.Flags().IntP("top-k", "k", 0, "how many recommendations to show. Default is 5.")

	viper.BindPFlag("top-k", runCmd.Flags().Lookup("top-k"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobrec", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	token, err := resolveToken(config)
	if err != nil {
		logger.Fatal(
			"loading findwork api key",
			zap.Error(err),
			zap.String("hint", "set FINDWORK_API_KEY (optionally via a .env file) or the 'token-file' key in the configuration file"),
		)
	}

	fw := findwork.New(ctx, logger, token)

	if config.UserAgent != "" {
		fw.UserAgent = config.UserAgent
	}

	topK := config.TopK
	if topK <= 0 {
		topK = matching.DefaultTopK
	}

	once := cmd.Flag("once").Value.String() == "true"
	renderer := render.New(os.Stdout)

	for {
		raw := config.Skills
		if !once {
			raw, err = promptSkills()
			if err != nil {
				logger.Fatal("reading skills", zap.Error(err))
			}
		}

		skills := matching.NormalizeSkills(raw)
		logger.Info("normalized skills", zap.Strings("skills", skills))

		postings, err := getPostings(fw, config, skills, logger)
		if err != nil {
			logger.Fatal("getting available postings", zap.Error(err))
		}

		filters := filtering.New([]filtering.Filter{
			filtering.NewDuplicates(),
			filtering.NewBlank(),
		}, logger)

		postings, err = filters.Run(postings)
		if err != nil {
			logger.Fatal("filtering failed", zap.Error(err))
		}

		relation := matching.BuildRelation(skills, postings.Items)
		logger.Debug("built skill relation",
			zap.Int("edges", relation.Len()),
			zap.Int("postings", postings.Len()),
		)

		results := matching.Recommend(relation, postings.Items, topK)

		renderer.Results(results)

		if once {
			return
		}

		if err := actionLoop(postings, skills, topK, renderer, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// actionLoop asks what to do with the current results until the user
// starts a new search or quits.
func actionLoop(postings *findwork.Postings, skills []string, topK int, renderer *render.Renderer, logger *zap.Logger) error {
	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptSearchAgain:
			return nil
		case PromptReportByCompany:
			pretty, _ := json.MarshalIndent(postings.ReportByCompany(), "", "  ")
			logger.Info(string(pretty), zap.Int("postings count", postings.Len()))
		case PromptDropPosting:
			if err := dropPosting(postings, skills, topK, renderer); err != nil {
				return err
			}
		case PromptPostingsToFile:
			filename, err := postings.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump postings to file: %w", err)
			}
			logger.Info("dumping postings to file", zap.String("filename", filename))
		case PromptQuit:
			logger.Info("exiting", zap.String("reason", "got quit from prompt"))
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

// dropPosting removes one posting chosen from a prompt and re-renders
// the ranking for the remaining feed.
func dropPosting(postings *findwork.Postings, skills []string, topK int, renderer *render.Renderer) error {
	items := make([]string, 0, postings.Len())
	for _, posting := range postings.Items {
		items = append(items, fmt.Sprintf("%s %s", posting.URL, posting.Title()))
	}

	dropPrompt := promptui.Select{
		Label: "Choose a posting to drop and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := dropPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	url := strings.Split(selected, " ")[0]
	if err := removePostingByURL(postings, url); err != nil {
		return err
	}

	relation := matching.BuildRelation(skills, postings.Items)
	renderer.Results(matching.Recommend(relation, postings.Items, topK))

	return nil
}

// removePostingByURL drops the posting carrying the given URL, keeping
// the fetch order of the remaining postings.
func removePostingByURL(postings *findwork.Postings, url string) error {
	found := postings.FindByURL(url)
	if found == nil {
		return fmt.Errorf("there is no such posting url %s", url)
	}

	for idx, posting := range postings.Items {
		if posting == found {
			postings.RemoveByIndex(idx)
			break
		}
	}

	return nil
}

// promptSkills collects up to five skills. An empty entry finishes the
// list early.
func promptSkills() ([]string, error) {
	skills := make([]string, 0, matching.MaxSkills)

	for len(skills) < matching.MaxSkills {
		prompt := promptui.Prompt{
			Label: fmt.Sprintf("Skill %d (empty to finish)", len(skills)+1),
		}

		value, err := prompt.Run()
		if err != nil {
			return nil, err
		}

		value = strings.TrimSpace(value)
		if value == "" {
			break
		}

		skills = append(skills, value)
	}

	return skills, nil
}

func resolveToken(config *Config) (string, error) {
	tokenFile := ""
	if config != nil {
		tokenFile = strings.TrimSpace(config.TokenFile)
	}

	if tokenFile == "" {
		tokenFile = strings.TrimSpace(viper.GetString("token-file"))
	}

	return secrets.Load(secrets.Source{
		Name: "findwork api key",
		File: tokenFile,
		Env:  apiKeyEnv,
	})
}

// getPostings returns postings matching the entered skills, falling back
// to the configured search text when no skills were given.
func getPostings(fw *findwork.Client, config *Config, skills []string, logger *zap.Logger) (*findwork.Postings, error) {
	params := &findwork.SearchParams{}
	if config.Search != nil {
		*params = *config.Search
	}

	if len(skills) > 0 {
		params.Search = strings.Join(skills, " ")
	}

	logger.Info("starting the search", zap.String("search", params.Search))

	results, err := fw.Search(params)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Info("getting postings", zap.Int("count", results.Len()))
	return results, nil
}
