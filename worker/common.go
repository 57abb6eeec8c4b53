package worker

import (
	"fmt"
	"path"
	"strings"
)

func getReportFileKey(task *Task) string {
	base := strings.TrimSuffix(path.Base(task.scriptKey), path.Ext(task.scriptKey))
	return path.Join(
		"replays",
		"reports",
		task.job.ID,
		fmt.Sprintf("%s.report.json", base),
	)
}
