package configs

// Schedule holds the cron expressions of the built-in trigger scheduler.
// Expressions use the standard five fields or descriptors such as
// "@every 1m" and are evaluated in UTC. The value "off" disables the job;
// Enabled=false disables the scheduler entirely, leaving triggers to an
// external caller.
type Schedule struct {
	Enabled        bool   `env:"ENABLED" envDefault:"true"`
	DailyReset     string `env:"DAILY_RESET" envDefault:"0 2 * * *"`
	MonthlyReset   string `env:"MONTHLY_RESET" envDefault:"30 1 1 * *"`
	BudgetTick     string `env:"BUDGET_TICK" envDefault:"@every 1m"`
	DaypartingTick string `env:"DAYPARTING_TICK" envDefault:"@every 1m"`
}
