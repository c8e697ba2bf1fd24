package feeds

import "time"

// Feed names, also used as snapshot keys and metric labels.
const (
	FeedActivities   = "activities"
	FeedCelebrations = "celebrations"
	FeedCommunity    = "community"
)

// Activity is one row of the activities sheet.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	DisplayDate string    `json:"displayDate"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
}

// Day returns the activity date as YYYY-MM-DD.
func (a Activity) Day() string {
	return a.Date.Format(time.DateOnly)
}

// Celebration is a birthday or anniversary. Date is "DD-MM" without a year.
type Celebration struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// CommunityMember is one directory contact.
type CommunityMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Contact     string `json:"contact"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

// CommunityCategory groups members under one sheet category.
type CommunityCategory struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Members []CommunityMember `json:"members"`
}

// RefreshReport summarises a forced refresh of every feed.
type RefreshReport struct {
	Activities   int `json:"activities"`
	Celebrations int `json:"celebrations"`
	Community    int `json:"community"`
}

// SourceConfig describes where a feed lives and how long it stays fresh.
type SourceConfig struct {
	URL string
	TTL time.Duration
}

// Config holds runtime knobs for the feeds service.
type Config struct {
	Activities   SourceConfig
	Celebrations SourceConfig
	Community    SourceConfig
	Location     *time.Location
}
