package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uzpay-labs/fraudscope/internal/api"
	"github.com/uzpay-labs/fraudscope/internal/cli"
	"github.com/uzpay-labs/fraudscope/internal/encoding"
	"github.com/uzpay-labs/fraudscope/internal/model"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a single transaction",
		Long: `Encode the given transaction fields into the model's feature vector and
ask the backend for a fraud verdict.

Categorical values must match the model's training vocabulary exactly;
anything unknown is forwarded as a missing feature.`,
		RunE: runPredict,
	}

	now := time.Now()

	cmd.Flags().Float64("amount", 0, "transaction amount")
	cmd.Flags().String("location", "Tashkent", "transaction location")
	cmd.Flags().Int("merchant-id", 0, "merchant identifier")
	cmd.Flags().Int("device-id", 0, "device identifier")
	cmd.Flags().String("card-type", "UzCard", "card type (Humo, UzCard)")
	cmd.Flags().String("currency", "UZS", "currency (USD, UZS)")
	cmd.Flags().String("status", "Successful", "transaction status (Failed, Reversed, Successful)")
	cmd.Flags().Int("previous-count", 0, "previous transaction count")
	cmd.Flags().Float64("distance-km", 0, "distance since last transaction (km)")
	cmd.Flags().Float64("minutes-since", 0, "minutes since last transaction")
	cmd.Flags().String("auth-method", "Password", "authentication method (2FA, Biometric, Password)")
	cmd.Flags().Int("velocity", 0, "transaction velocity")
	cmd.Flags().String("category", "Payment", "transaction category (Cash In, Cash Out, Payment, Transfer)")
	cmd.Flags().String("date", now.Format("2006-01-02"), "transaction date (YYYY-MM-DD)")
	cmd.Flags().String("time", now.Format("15:04"), "transaction time (HH:MM)")

	return cmd
}

func runPredict(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	in := model.TransactionInput{}
	in.Amount, _ = flags.GetFloat64("amount")
	in.Location, _ = flags.GetString("location")
	in.MerchantID, _ = flags.GetInt("merchant-id")
	in.DeviceID, _ = flags.GetInt("device-id")
	in.CardType, _ = flags.GetString("card-type")
	in.Currency, _ = flags.GetString("currency")
	in.Status, _ = flags.GetString("status")
	in.PreviousTxnCount, _ = flags.GetInt("previous-count")
	in.DistanceKm, _ = flags.GetFloat64("distance-km")
	in.TimeSinceLastMin, _ = flags.GetFloat64("minutes-since")
	in.AuthenticationMethod, _ = flags.GetString("auth-method")
	in.Velocity, _ = flags.GetInt("velocity")
	in.Category, _ = flags.GetString("category")

	date, _ := flags.GetString("date")
	clock, _ := flags.GetString("time")
	ts, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date/time: %w", err)
	}
	in.SetTimestamp(ts)

	client := api.New(viper.GetString("backend.url"), stderrNotifier{})
	pred := client.PredictFraud(cmd.Context(), encoding.Assemble(in))
	if pred == nil {
		return fmt.Errorf("no response from backend at %s", client.BaseURL())
	}
	if pred.IsFraud == nil {
		return fmt.Errorf("backend response carried no verdict")
	}

	var verdict string
	if pred.Fraudulent() {
		verdict = cli.ErrorStyle.Render("Fraud Detected")
	} else {
		verdict = cli.SuccessStyle.Render("Normal Transaction")
	}

	content := fmt.Sprintf("Prediction:  %s\nProbability: %.3f", verdict, pred.Probability)
	fmt.Println(cli.RenderBox("Analysis Complete", content))

	return nil
}
