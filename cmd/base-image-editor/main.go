package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/knguyenphu-toffee/base-image-editor/internal/batch"
	"github.com/knguyenphu-toffee/base-image-editor/internal/chat"
	"github.com/knguyenphu-toffee/base-image-editor/internal/cli"
	"github.com/knguyenphu-toffee/base-image-editor/internal/logging"
	"github.com/knguyenphu-toffee/base-image-editor/internal/s3util"
	"github.com/knguyenphu-toffee/base-image-editor/internal/variation"
)

// CLI flags
var (
	inputDirFlag   string
	outputDirFlag  string
	expressionFlag string
	modelFlag      string
	delayFlag      = batch.DefaultDelay
	seedFlag       int64
	s3BucketFlag   string
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "base-image-editor",
	Short: "AI-powered selfie variation generator",
	Long: `Base Image Editor takes one selfie from the starting image directory and
generates stylistic variations of it - different outfit, a shifted bedroom
background, and a changed facial expression - using the Gemini image model.

Each batch purges the previous outputs of the same expression category before
writing new files, so the output directory always holds exactly one complete
generation per category.

Examples:
  base-image-editor                                # Interactive menu
  base-image-editor --expression neutral           # 5 neutral variations
  base-image-editor -e snapchat_same_outfit        # Snapchat set, one outfit
  base-image-editor -e sobbing --delay 5s          # Slower API pacing
  base-image-editor -e snapchat --s3-bucket my-bkt # Mirror outputs to S3`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().StringVarP(&inputDirFlag, "input-dir", "i", "starting_image", "Directory containing the base selfie")
	rootCmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "output", "Directory where variations are written")
	rootCmd.Flags().StringVarP(&expressionFlag, "expression", "e", "", "Batch to generate (neutral, sobbing, snapchat, snapchat_same_outfit); empty for the interactive menu")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", chat.GetModelName(), "Gemini image model to use")
	rootCmd.Flags().DurationVar(&delayFlag, "delay", batch.DefaultDelay, "Pacing delay between generation calls")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Random seed for outfit/background sampling (0 = time-based)")
	rootCmd.Flags().StringVar(&s3BucketFlag, "s3-bucket", "", "Mirror generated outputs to this S3 bucket")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) {
	logging.Init()

	ctx, client := cli.InitGeminiClient()

	driver := newDriver(ctx, client)

	if expressionFlag != "" {
		kind, err := batch.ParseKind(expressionFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid --expression value")
		}
		summary := runBatch(ctx, driver, kind)
		if summary.Succeeded == 0 {
			os.Exit(1)
		}
		return
	}

	runMenu(ctx, driver)
}

// newDriver assembles the batch driver from flags.
func newDriver(ctx context.Context, client *genai.Client) *batch.Driver {
	var src variation.Source
	if seedFlag != 0 {
		src = rand.New(rand.NewSource(seedFlag))
		log.Info().Int64("seed", seedFlag).Msg("Using fixed random seed")
	}

	driver := &batch.Driver{
		Client:    client,
		Model:     modelFlag,
		Composer:  variation.NewComposer(src),
		InputDir:  cli.ValidateAndResolveDirectory(inputDirFlag),
		OutputDir: outputDirFlag,
		Delay:     delayFlag,
		S3Bucket:  s3BucketFlag,
	}

	if s3BucketFlag != "" {
		s3Client, err := s3util.NewClient(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize S3 client")
		}
		driver.S3 = s3Client
	}

	return driver
}

// runMenu runs the interactive category menu loop.
func runMenu(ctx context.Context, driver *batch.Driver) {
	fmt.Println("Base Image Editor - Selfie Variation Generator")

	for {
		choice := cli.PromptMenu()

		var kind batch.Kind
		switch choice {
		case cli.ChoiceNeutral:
			kind = batch.KindNeutral
		case cli.ChoiceSobbing:
			kind = batch.KindSobbing
		case cli.ChoiceSnapchat:
			kind = batch.KindSnapchat
		case cli.ChoiceSnapchatSameOutfit:
			kind = batch.KindSnapchatSameOutfit
		case cli.ChoiceQuit:
			fmt.Println("\nThank you for using the Image Variation Generator!")
			return
		default:
			fmt.Println("\nInvalid choice. Please enter 1, 2, 3, 4, or 5.")
			continue
		}

		runBatch(ctx, driver, kind)

		if !cli.PromptContinue() {
			fmt.Println("\nThank you for using the Image Variation Generator!")
			return
		}
	}
}

// runBatch executes one batch and prints its outcome.
func runBatch(ctx context.Context, driver *batch.Driver, kind batch.Kind) *batch.Summary {
	summary, err := driver.Run(ctx, kind)
	if err != nil {
		log.Fatal().Err(err).Str("kind", kind.String()).Msg("batch aborted")
	}

	fmt.Printf("\nGeneration complete! %d/%d variations created successfully in %s.\n",
		summary.Succeeded, summary.Requested, cli.FormatDurationShort(summary.Duration))
	if kind == batch.KindSnapchat || kind == batch.KindSnapchatSameOutfit {
		fmt.Println("   Types: Goofy, Tongue, Confused, Shocked, Crying")
	}
	fmt.Printf("Output files saved in: %s/\n", driver.OutputDir)

	if summary.Succeeded == 0 {
		log.Error().Str("kind", kind.String()).Msg("No variations were created successfully")
	}

	return summary
}
