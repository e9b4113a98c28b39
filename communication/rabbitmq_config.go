package communication

// QueueDeclarationConfig contains the parameters to declare a RabbitMQ queue
type QueueDeclarationConfig struct {
	Name             string `yaml:"name" json:"name"`
	Durable          bool   `yaml:"durable" json:"durable"`
	DeleteWhenUnused bool   `yaml:"delete_when_unused" json:"delete_when_unused"`
	Exclusive        bool   `yaml:"exclusive" json:"exclusive"`
	NoWait           bool   `yaml:"no_wait" json:"no_wait"`
}
