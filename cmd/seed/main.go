package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"legal-advisor-be/internal/config"
	"legal-advisor-be/internal/entity"
	"legal-advisor-be/internal/repository/implementation"
	"legal-advisor-be/pkg/database"
	"legal-advisor-be/pkg/embedding"
	"legal-advisor-be/pkg/embedding/jina"
	"legal-advisor-be/pkg/utils"

	"github.com/fatih/color"
)

// embedInputLimit bounds how much section text feeds the embedding model;
// the full text is stored regardless.
const embedInputLimit = 2000

type corpusSection struct {
	Act           string `json:"act"`
	SectionNumber string `json:"section_number"`
	FullText      string `json:"full_text"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: seed <corpus.json>")
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "jina" {
		provider = jina.NewProvider(cfg.Ai.JinaAPIKey)
	} else {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal("Error: Failed to read corpus file:", err)
	}

	var sections []corpusSection
	if err := json.Unmarshal(raw, &sections); err != nil {
		log.Fatal("Error: Failed to parse corpus file:", err)
	}

	color.Cyan("Seeding %d statute sections...", len(sections))

	repo := implementation.NewStatuteSectionRepository(db)
	ctx := context.Background()

	entities := make([]*entity.StatuteSection, 0, len(sections))
	vectors := make([][]float32, 0, len(sections))

	for i, s := range sections {
		input := utils.SplitText(s.FullText, embedInputLimit, 0)[0]
		vector, err := provider.Embed(ctx, input)
		if err != nil {
			color.Red("  skip %s Sec %s: %v", s.Act, s.SectionNumber, err)
			continue
		}

		entities = append(entities, &entity.StatuteSection{
			Act:           s.Act,
			SectionNumber: s.SectionNumber,
			FullText:      s.FullText,
		})
		vectors = append(vectors, vector)

		if (i+1)%50 == 0 {
			color.Yellow("  embedded %d/%d", i+1, len(sections))
		}
	}

	if err := repo.CreateBulk(ctx, entities, vectors); err != nil {
		log.Fatal("Error: Bulk insert failed:", err)
	}

	color.Green("Done: %d sections seeded.", len(entities))
}
