package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"stayhub/dto"
	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// normalizeInput strips accents and case so fuzzy matching works on what the
// user actually typed.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings in [0,1] by levenshtein distance.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// destinationMatchThreshold rejects matches that share too few characters
// with any known city.
const destinationMatchThreshold = 0.5

// MatchDestination fuzzy-matches free text against the known city names and
// returns the canonical name, or "" when nothing is close enough.
func MatchDestination(input string, cities []models.City) string {
	if input == "" || len(cities) == 0 {
		return ""
	}

	normalized := make([]string, 0, len(cities))
	byNormalized := make(map[string]string, len(cities))
	for _, city := range cities {
		key := normalizeInput(city.Name)
		normalized = append(normalized, key)
		byNormalized[key] = city.Name
	}

	query := normalizeInput(input)
	best := createMatcher(normalized).Closest(query)
	if best == "" {
		return ""
	}
	if calculateSimilarity(query, best) < destinationMatchThreshold && !strings.Contains(query, best) {
		return ""
	}
	return byNormalized[best]
}

var (
	guestPattern = regexp.MustCompile(`(\d+)\s*(?:guest|people|person|adult)s?`)
	roomPattern  = regexp.MustCompile(`(\d+)\s*rooms?`)
	starPattern  = regexp.MustCompile(`(\d)\s*stars?`)
	datePattern  = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`)
	pricePattern = regexp.MustCompile(`(?:under|below|max)\s*(\d+)`)
)

// ExtractSearchFilters parses a chat message into search filters: fuzzy
// destination, guest/room counts, star rating, a dd/mm/yyyy date pair and a
// price ceiling. Fields the message does not mention stay nil so the
// session's previous filters can fill them.
func ExtractSearchFilters(message string, cities []models.City) *dto.SearchFilters {
	normalized := normalizeInput(message)
	filters := &dto.SearchFilters{}

	if m := guestPattern.FindStringSubmatch(normalized); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			filters.GuestCount = &n
		}
	}
	if m := roomPattern.FindStringSubmatch(normalized); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			filters.RoomCount = &n
		}
	}
	if m := starPattern.FindStringSubmatch(normalized); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil {
			filters.Stars = &n
		}
	}
	if m := pricePattern.FindStringSubmatch(normalized); len(m) == 2 {
		if p, err := strconv.ParseFloat(m[1], 64); err == nil {
			filters.PriceMax = &p
		}
	}

	if dates := datePattern.FindAllString(normalized, 2); len(dates) > 0 {
		if from, err := time.Parse("02/01/2006", dates[0]); err == nil {
			filters.FromDate = &from
		}
		if len(dates) == 2 {
			if to, err := time.Parse("02/01/2006", dates[1]); err == nil {
				filters.ToDate = &to
			}
		}
	}

	filters.Destination = MatchDestination(message, cities)
	return filters
}

// SaveChatHistory persists one chat message for the session.
func SaveChatHistory(db *gorm.DB, userID int, sessionID, sender, messageType, content string) error {
	chat := models.ChatHistory{
		UserID:      userID,
		SessionID:   sessionID,
		Sender:      sender,
		MessageType: messageType,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	return db.Create(&chat).Error
}
