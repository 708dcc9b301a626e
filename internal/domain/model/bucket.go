package model

import "strconv"

const (
	MinBucketRating  = 800
	MaxBucketRating  = 2600
	BucketRatingStep = 100

	// OtherBucket collects unknown, off-grid and out-of-range ratings.
	OtherBucket = "Other"
)

// BucketLabels returns the fixed chart labels in display order.
func BucketLabels() []string {
	labels := make([]string, 0, (MaxBucketRating-MinBucketRating)/BucketRatingStep+2)
	for r := MinBucketRating; r <= MaxBucketRating; r += BucketRatingStep {
		labels = append(labels, strconv.Itoa(r))
	}
	return append(labels, OtherBucket)
}

// BucketFor returns the chart label a rating key falls into.
func BucketFor(key RatingKey) string {
	r, ok := key.Rating()
	if !ok || r < MinBucketRating || r > MaxBucketRating || r%BucketRatingStep != 0 {
		return OtherBucket
	}
	return strconv.Itoa(r)
}

// IsBucketLabel reports whether label is one of BucketLabels.
func IsBucketLabel(label string) bool {
	if label == OtherBucket {
		return true
	}
	return BucketFor(RatingKey(label)) == label
}

// Tier is the colour band a rating belongs to.
type Tier struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	RGBA string `json:"rgba"`
}

var (
	TierNewbie          = Tier{Name: "newbie", Hex: "#808080", RGBA: "rgba(0, 0, 0, 0.3)"}
	TierPupil           = Tier{Name: "pupil", Hex: "#008000", RGBA: "rgba(0, 128, 0, 0.5)"}
	TierSpecialist      = Tier{Name: "specialist", Hex: "#03A89E", RGBA: "rgba(0, 255, 255, 0.5)"}
	TierExpert          = Tier{Name: "expert", Hex: "#0000FF", RGBA: "rgba(0, 0, 255, 0.5)"}
	TierCandidateMaster = Tier{Name: "candidate master", Hex: "#AA00AA", RGBA: "rgba(128, 0, 128, 0.5)"}
	TierMaster          = Tier{Name: "master", Hex: "#FF8C00", RGBA: "rgba(255, 165, 0, 0.5)"}
	TierGrandmaster     = Tier{Name: "grandmaster", Hex: "#FF0000", RGBA: "rgba(255, 0, 0, 0.5)"}
	TierUnrated         = Tier{Name: "unrated", Hex: "#94A3B8", RGBA: "rgba(128, 128, 128, 0.5)"}
)

// TierFor returns the colour band of a chart label.
func TierFor(label string) Tier {
	r, err := strconv.Atoi(label)
	if err != nil {
		return TierUnrated
	}
	switch {
	case r >= 0 && r <= 1100:
		return TierNewbie
	case r >= 1200 && r <= 1300:
		return TierPupil
	case r >= 1400 && r <= 1500:
		return TierSpecialist
	case r >= 1600 && r <= 1800:
		return TierExpert
	case r >= 1900 && r <= 2100:
		return TierCandidateMaster
	case r >= 2200 && r <= 2300:
		return TierMaster
	case r >= 2400 && r <= 2600:
		return TierGrandmaster
	default:
		return TierUnrated
	}
}
