package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"

	"github.com/Eyobiel-12/savannaeetcafe/internal/app"
	"github.com/Eyobiel-12/savannaeetcafe/internal/config"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
)

const consumerGroup = "savanna-mail-relay"

func main() {
	cfgFile := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := app.Logger(cfg).With().Str("component", "mail-worker").Logger()

	// The relay always sends through EmailJS.
	mail, err := app.MailDispatcher(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("emailjs not configured")
	}

	saramaCfg := reservation.NewSaramaConfig(cfg.DispatchTimeout)
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaCfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.KafkaBrokerList, consumerGroup, saramaCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create kafka consumer group")
	}
	defer group.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for err := range group.Errors() {
			log.Error().Err(err).Msg("consumer group error")
		}
	}()

	relay := reservation.NewRelay(mail, log)
	log.Info().
		Strs("brokers", cfg.KafkaBrokerList).
		Str("topic", cfg.KafkaTopic).
		Msg("mail worker running")

	for {
		if err := group.Consume(ctx, []string{cfg.KafkaTopic}, relay); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error().Err(err).Msg("consume failed, retrying")
			time.Sleep(2 * time.Second)
		}
		if ctx.Err() != nil {
			log.Info().Msg("mail worker stopped")
			return
		}
	}
}
