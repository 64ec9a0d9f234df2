package app

import (
	"github.com/vladislavdragonenkov/commerce/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/commerce/internal/service/checkout"
)

// createOrchestrator создаёт checkout orchestrator с или без Kafka в
// зависимости от наличия kafka producer.
func createOrchestrator(
	deps *Dependencies,
	kafkaProducer *kafka.Producer,
) checkout.Orchestrator {
	if kafkaProducer != nil {
		return checkout.NewOrchestratorWithKafka(
			deps.Repo,
			deps.Products,
			deps.Verifier,
			deps.Gateway,
			deps.OutboxRepo,
			deps.TimelineRepo,
			kafkaProducer,
			deps.Logger,
		)
	}

	return checkout.NewOrchestrator(
		deps.Repo,
		deps.Products,
		deps.Verifier,
		deps.Gateway,
		deps.OutboxRepo,
		deps.TimelineRepo,
		deps.Logger,
	)
}
