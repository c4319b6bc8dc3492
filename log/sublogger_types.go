package log

// Global vars related to the logger package
var (
	subLoggers = map[string]*SubLogger{}

	Global       *SubLogger
	ConfigMgr    *SubLogger
	RequestSys   *SubLogger
	WebsocketMgr *SubLogger
	StreamSys    *SubLogger
)

// register all loggers at package init()
func init() {
	Global = registerNewSubLogger("LOG")
	ConfigMgr = registerNewSubLogger("CONFIG")
	RequestSys = registerNewSubLogger("REQUESTER")
	WebsocketMgr = registerNewSubLogger("WEBSOCKET")
	StreamSys = registerNewSubLogger("STREAM")
}
