package monitoring

import (
	"strings"
)

var receiverCleaner = strings.NewReplacer("(*", "", "(", "", ")", "")

// getSegmentName shortens a runtime function name to "package.Receiver.Method",
// e.g. ".../internal/services.(*reconciler).CreateTransactions" to "services.reconciler.CreateTransactions".
func getSegmentName(fullFuncName string) string {
	name := fullFuncName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	name = receiverCleaner.Replace(name)
	if name == "" {
		return fullFuncName
	}
	return name
}
