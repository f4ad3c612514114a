package placeholder

// Sender holds the outreach sender's identity and offer defaults. Values
// come from configuration (file or environment) and are passed in
// explicitly per invocation; resolution precedence is value-in-row >
// sender default > empty string, applied once in Build.
type Sender struct {
	Name          string `yaml:"name" mapstructure:"name"`
	Title         string `yaml:"title" mapstructure:"title"`
	Company       string `yaml:"company" mapstructure:"company"`
	Website       string `yaml:"website" mapstructure:"website"`
	Phone         string `yaml:"phone" mapstructure:"phone"`
	Email         string `yaml:"email" mapstructure:"email"`
	City          string `yaml:"city" mapstructure:"city"`
	Industry      string `yaml:"industry" mapstructure:"industry"`
	CalendarLink  string `yaml:"calendar_link" mapstructure:"calendar_link"`
	ProjectLink   string `yaml:"project_link" mapstructure:"project_link"`
	ShortOutcome  string `yaml:"short_outcome" mapstructure:"short_outcome"`
	Price         string `yaml:"price" mapstructure:"price"`
	Pages         string `yaml:"pages" mapstructure:"pages"`
	Timeline      string `yaml:"timeline" mapstructure:"timeline"`
	SupportPeriod string `yaml:"support_period" mapstructure:"support_period"`
	Role          string `yaml:"role" mapstructure:"role"` // default contact role, "Owner" when unset
}
