// Command kb_scrape fetches the bank's public pages and writes the raw
// knowledge base as JSON records of {source_url, content}. Run it before
// cmd/kb_ingest whenever the site content changes.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const outputFile = "knowledge_base.json"

// pages is the fixed crawl list. The FAQ page has its own structure; every
// other page is read as the whole text of its main content block.
var pages = []string{
	"https://www.zamanbank.kz/",
	"https://www.zamanbank.kz/ru/about/",
	"https://www.zamanbank.kz/ru/products/",
	"https://www.zamanbank.kz/ru/cards/",
	"https://www.zamanbank.kz/ru/deposits/",
	"https://www.zamanbank.kz/ru/financing/",
	"https://www.zamanbank.kz/ru/faq/",
	"https://www.zamanbank.kz/ru/contacts/",
}

type pageRecord struct {
	SourceURL string `json:"source_url"`
	Content   string `json:"content"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client := &http.Client{Timeout: 30 * time.Second}

	var records []pageRecord
	for _, url := range pages {
		content, err := scrapePage(client, url)
		if err != nil {
			logger.Error("Failed to scrape page", slog.String("url", url), slog.String("error", err.Error()))
			continue
		}
		if content == "" {
			logger.Warn("Page yielded no content", slog.String("url", url))
			continue
		}
		records = append(records, pageRecord{SourceURL: url, Content: content})
		logger.Info("Page scraped", slog.String("url", url), slog.Int("chars", len(content)))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal knowledge base", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		logger.Error("Failed to write knowledge base", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Knowledge base written", slog.String("file", outputFile), slog.Int("pages", len(records)))
}

func scrapePage(client *http.Client, url string) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	if strings.Contains(url, "/faq") {
		return extractFAQ(doc), nil
	}
	return extractMainContent(doc), nil
}

// extractFAQ turns each question block into a "Вопрос: … Ответ: …" record
// so one chunk keeps a question together with its answer.
func extractFAQ(doc *goquery.Document) string {
	var entries []string
	doc.Find("div[id^=question-faq-]").Each(func(_ int, s *goquery.Selection) {
		question := cleanText(s.Find(".question-title").Text())
		answer := cleanText(s.Find(".question-answer").Text())
		if question == "" {
			return
		}
		entries = append(entries, fmt.Sprintf("Вопрос: %s Ответ: %s", question, answer))
	})
	return strings.Join(entries, "\n")
}

func extractMainContent(doc *goquery.Document) string {
	main := doc.Find("main.content")
	if main.Length() == 0 {
		main = doc.Find("main")
	}
	if main.Length() == 0 {
		main = doc.Find("body")
	}
	return cleanText(main.Text())
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
