package utils

import (
	"fmt"
	"math"
)

func HumanSize(size int64) string {
	if size <= 0 {
		return "0"
	}
	sizes := []string{"B", "K", "M", "G", "T"}
	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	return fmt.Sprintf("%.1f %s", float64(size)/math.Pow(1024, float64(i)), sizes[i])
}
