package feeds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/comunidad/pkg/csvline"
)

type urlFetcher map[string]string

func (f urlFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f[url], nil
}

func newTestService(now time.Time) *service {
	fetcher := urlFetcher{
		"a": "Titulo,Fecha,Hora,Lugar\n" +
			"Misa,03-03-2025,19:00,Parroquia\n" +
			",03-03-2025,08:00,Salón\n" +
			"Retiro,15-02-2025,09:00,Casa\n" +
			"Incompleta,04-03-2025\n" +
			"Cena,10-03-2025,20:00,\"Calle 5, Centro\"\n",
		"c": "Fecha,Categoria,Nombre\n" +
			"03-03,Cumpleaños,Ana\n" +
			"3-3,,Luis\n" +
			"04-03,Aniversario,\n" +
			",Cumpleaños,Sin fecha\n" +
			"05-03,Cumpleaños,Marta\n",
		"m": "Categoria,Nombre,Rol,Contacto\n" +
			"Coordinación,Pedro,Coordinador,+57 (300) 123-4567\n" +
			",Huérfano,Rol,1\n" +
			"Música,,Guitarra,\n" +
			"Coordinación,Lucía,Tesorera,correo@example.com\n",
	}
	cfg := Config{
		Activities:   SourceConfig{URL: "a", TTL: 5 * time.Minute},
		Celebrations: SourceConfig{URL: "c", TTL: time.Hour},
		Community:    SourceConfig{URL: "m", TTL: 5 * time.Minute},
		Location:     time.UTC,
	}
	svc := NewService(cfg, fetcher, nil, testLogger()).(*service)
	svc.setClock(func() time.Time { return now })
	return svc
}

func TestActivitiesParsingAndFilters(t *testing.T) {
	svc := newTestService(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	all := svc.Activities(ctx, false)
	require.Len(t, all, 4)
	require.Equal(t, "Retiro", all[0].Title)
	require.Equal(t, "Misa", all[1].Title)
	require.Equal(t, "activity-1", all[1].ID)
	require.Equal(t, "Sin título", all[2].Title)
	require.Equal(t, "Calle 5, Centro", all[3].Location)

	upcoming := svc.UpcomingActivities(ctx, false)
	require.Len(t, upcoming, 3)
	require.Equal(t, "Misa", upcoming[0].Title)

	past := svc.PastActivities(ctx)
	require.Len(t, past, 1)
	require.Equal(t, "Retiro", past[0].Title)

	onDay := svc.ActivitiesOn(ctx, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.Len(t, onDay, 2)

	require.Equal(t, []string{"2025-02-15", "2025-03-03", "2025-03-10"}, svc.MarkedDates(ctx))
}

func TestCelebrationsParsingAndToday(t *testing.T) {
	svc := newTestService(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	all := svc.Celebrations(ctx, false)
	require.Len(t, all, 3)
	require.Equal(t, Celebration{ID: "cel-2", Date: "3-3", Category: "Celebración", Name: "Luis"}, all[1])

	today := svc.TodayCelebrations(ctx, false)
	require.Len(t, today, 2)
	require.Equal(t, "Ana", today[0].Name)
	require.Equal(t, "Luis", today[1].Name)
}

func TestCommunityGroupsInFirstSeenOrder(t *testing.T) {
	svc := newTestService(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC))

	groups := svc.Community(context.Background(), false)
	require.Len(t, groups, 2)
	require.Equal(t, "cat-0", groups[0].ID)
	require.Equal(t, "Coordinación", groups[0].Title)
	require.Len(t, groups[0].Members, 2)
	require.Equal(t, "member-1", groups[0].Members[0].ID)
	require.Equal(t, "https://wa.me/+573001234567", groups[0].Members[0].WhatsAppURL)
	require.Empty(t, groups[0].Members[1].WhatsAppURL)

	require.Equal(t, "Música", groups[1].Title)
	require.Equal(t, "Sin nombre", groups[1].Members[0].Name)
}

func TestRefreshAll(t *testing.T) {
	svc := newTestService(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC))
	require.Equal(t, RefreshReport{Activities: 4, Celebrations: 3, Community: 2}, svc.RefreshAll(context.Background()))
}

func TestFetchedAtTracksDownloads(t *testing.T) {
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	require.True(t, svc.FetchedAt(FeedActivities).IsZero())

	svc.UpcomingActivities(context.Background(), false)
	require.True(t, svc.FetchedAt(FeedActivities).Equal(now))
	require.True(t, svc.FetchedAt(FeedCommunity).IsZero())
	require.True(t, svc.FetchedAt("unknown").IsZero())
}

func TestParseActivityDate(t *testing.T) {
	now := time.Date(2025, 6, 9, 15, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), parseActivityDate("10-05-2025", now))
	require.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), parseActivityDate("mañana", now))
	require.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), parseActivityDate("aa-05-2025", now))
}

func TestParseActivitiesSkipsShortRows(t *testing.T) {
	rows, ok := csvline.Rows("h\n\"Smith, John\",10-05-2025,10:00,Hall\nsolo,10-05-2025\n")
	require.True(t, ok)
	got := parseActivities(rows, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 1)
	require.Equal(t, "Smith, John", got[0].Title)
	require.Equal(t, "Hall", got[0].Location)
	require.Equal(t, "10 de May", got[0].DisplayDate)
}

func TestWhatsAppURL(t *testing.T) {
	require.Equal(t, "https://wa.me/573001112233", WhatsAppURL("573001112233"))
	require.Equal(t, "https://wa.me/+34600111222", WhatsAppURL("+34 600 11 12 22"))
	require.Empty(t, WhatsAppURL("sin teléfono"))
}
