package feed

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/eduncan911/podcast"
	"vidtube/internal/models"
)

func getBaseURL(r *http.Request) string {
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		return baseURL
	}

	scheme := r.URL.Scheme
	if scheme == "" {
		scheme = "https"
		if r.Header.Get("X-Forwarded-Proto") != "" {
			scheme = r.Header.Get("X-Forwarded-Proto")
		}
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// GenerateRSS renders a playlist and its videos as an RSS feed, one item
// per video linking to its watch page.
func GenerateRSS(playlist *models.Playlist, videos []models.Video, r *http.Request) (string, error) {
	baseURL := getBaseURL(r)
	now := time.Now()

	description := playlist.Description
	if description == "" {
		description = fmt.Sprintf("Videos in the %s playlist.", playlist.Name)
	}

	p := podcast.New(
		playlist.Name,
		fmt.Sprintf("%s/rss/%s", baseURL, playlist.ID),
		description,
		&playlist.CreatedAt, &now,
	)

	for i := range videos {
		v := &videos[i]
		itemDescription := v.Description
		if itemDescription == "" {
			itemDescription = v.Title
		}
		item := podcast.Item{
			Title:       v.Title,
			Description: itemDescription,
			Link:        fmt.Sprintf("%s/watch/%s", baseURL, v.ID),
		}
		if v.PublishedAt != nil {
			item.PubDate = v.PublishedAt
		}
		if _, err := p.AddItem(item); err != nil {
			return "", err
		}
	}

	return p.String(), nil
}
