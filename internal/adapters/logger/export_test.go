// export_test.go exports private functions for white-box testing.
package logger

// Error formatting internals.
var (
	CollectMessages = collectMessages
	FormatMessages  = formatMessages
)
