package pagination

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Page is one renderable card of a paginated set.
type Page struct {
	Title  string
	Items  []string
	Footer string
	Color  int
	Embed  *discordgo.MessageEmbed
}

// Body returns the page's items joined by newlines.
func (p Page) Body() string {
	return strings.Join(p.Items, "\n")
}

// Paginate splits items into consecutive pages of itemsPerPage, preserving
// order. An empty list yields a single empty page.
func Paginate(title string, items []string, color int, itemsPerPage int) ([]Page, error) {
	if itemsPerPage <= 0 {
		return nil, fmt.Errorf("%w: items per page must be positive, got %d", ErrInvalidConfiguration, itemsPerPage)
	}

	totalPages := (len(items) + itemsPerPage - 1) / itemsPerPage
	if totalPages == 0 {
		totalPages = 1
	}

	pages := make([]Page, 0, totalPages)
	for index := 0; index < totalPages; index++ {
		start := index * itemsPerPage
		end := start + itemsPerPage
		if end > len(items) {
			end = len(items)
		}

		chunk := make([]string, end-start)
		copy(chunk, items[start:end])

		page := Page{
			Title:  title,
			Items:  chunk,
			Footer: footerText(index, totalPages),
			Color:  color,
		}
		page.Embed = &discordgo.MessageEmbed{
			Title:       page.Title,
			Description: page.Body(),
			Color:       page.Color,
			Footer:      &discordgo.MessageEmbedFooter{Text: page.Footer},
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// FromEmbeds wraps copies of prebuilt cards as pages. Cards without a footer
// get the "Page i/n" footer; the caller's embeds are left untouched.
func FromEmbeds(embeds ...*discordgo.MessageEmbed) []Page {
	pages := make([]Page, 0, len(embeds))
	for index, embed := range embeds {
		card := &discordgo.MessageEmbed{}
		if embed != nil {
			copied := *embed
			card = &copied
		}
		if card.Footer == nil {
			card.Footer = &discordgo.MessageEmbedFooter{Text: footerText(index, len(embeds))}
		}
		pages = append(pages, Page{
			Title:  card.Title,
			Footer: card.Footer.Text,
			Color:  card.Color,
			Embed:  card,
		})
	}
	return pages
}

func footerText(index, total int) string {
	return fmt.Sprintf("Page %d/%d", index+1, total)
}
