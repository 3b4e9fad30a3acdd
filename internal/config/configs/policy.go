package configs

// Policy bounds the amount a single investor may pledge, in integer
// currency units (BD). When the remaining goal of a campaign drops below
// MinPledge, only an exact closing pledge is accepted.
type Policy struct {
	MinPledge int64 `env:"MIN_PLEDGE" envDefault:"2000"`
	MaxPledge int64 `env:"MAX_PLEDGE" envDefault:"5000"`
}
