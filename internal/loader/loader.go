package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/napolitain/hotcold-golf/internal/models"
)

const (
	clubsFile     = "clubs.json"
	questionsFile = "questions.json"
)

// ClubJSON represents the JSON structure for a club
type ClubJSON struct {
	Name      string `json:"name"`
	Range     int    `json:"range"`
	Accuracy  int    `json:"accuracy"`
	SandWedge bool   `json:"sand_wedge,omitempty"`
}

// QuestionJSON represents the JSON structure for a question
type QuestionJSON struct {
	Par      int    `json:"par"`
	Question string `json:"question"`
	Answer   int    `json:"answer"`
}

// LoadCatalog loads clubs and questions from the data directory and
// validates the result
func LoadCatalog(dataDir string) (models.Catalog, error) {
	clubs, err := LoadClubs(dataDir)
	if err != nil {
		return models.Catalog{}, err
	}

	questions, err := LoadQuestions(dataDir)
	if err != nil {
		return models.Catalog{}, err
	}

	catalog := models.Catalog{Clubs: clubs, Questions: questions}
	if err := catalog.Validate(); err != nil {
		return models.Catalog{}, fmt.Errorf("%s: %w", dataDir, err)
	}
	return catalog, nil
}

// LoadClubs loads the golf bag from clubs.json, keeping file order
func LoadClubs(dataDir string) ([]models.Club, error) {
	var raw []ClubJSON
	if err := readJSON(filepath.Join(dataDir, clubsFile), &raw); err != nil {
		return nil, err
	}

	clubs := make([]models.Club, 0, len(raw))
	for _, c := range raw {
		clubs = append(clubs, models.NewClub(c.Name, c.Range, c.Accuracy, c.SandWedge))
	}
	return clubs, nil
}

// LoadQuestions loads the question pool from questions.json
func LoadQuestions(dataDir string) ([]models.Question, error) {
	var raw []QuestionJSON
	if err := readJSON(filepath.Join(dataDir, questionsFile), &raw); err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(raw))
	for _, q := range raw {
		questions = append(questions, models.NewQuestion(q.Par, q.Question, q.Answer))
	}
	return questions, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
