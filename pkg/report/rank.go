// Package report scores, ranks and renders process snapshots.
package report

import (
	"sort"
	"strings"

	"github.com/srodi/procwatch/pkg/types"
)

// Score counts the keywords found in commandLine, ignoring case. Blank keywords never match.
func Score(commandLine string, keywords []string) int {
	cmd := strings.ToLower(commandLine)
	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(cmd, kw) {
			score++
		}
	}
	return score
}

// Classify returns copies of infos with MatchScore computed against keywords.
func Classify(infos []types.ProcessInfo, keywords []string) []types.ProcessInfo {
	scored := make([]types.ProcessInfo, len(infos))
	for i, info := range infos {
		info.MatchScore = Score(info.CommandLine, keywords)
		scored[i] = info
	}
	return scored
}

// Rank orders by score then displayed MB, both descending. Equal rows keep
// discovery order, so RSS differences under 0.1 MB do not reorder processes.
func Rank(infos []types.ProcessInfo) types.RankedProcessList {
	rows := clone(infos)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MatchScore != rows[j].MatchScore {
			return rows[i].MatchScore > rows[j].MatchScore
		}
		return rows[i].ResidentMB() > rows[j].ResidentMB()
	})
	return rows
}

// ByMemory orders by displayed MB descending, ignoring scores.
func ByMemory(infos []types.ProcessInfo) types.RankedProcessList {
	rows := clone(infos)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ResidentMB() > rows[j].ResidentMB()
	})
	return rows
}

func clone(infos []types.ProcessInfo) types.RankedProcessList {
	rows := make(types.RankedProcessList, len(infos))
	copy(rows, infos)
	return rows
}
