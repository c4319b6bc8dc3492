package apierror

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCode is returned when decoding a server error code outside the
// documented enumeration
var ErrUnknownCode = errors.New("unknown server error code")

// Code is a server error code
type Code int

// General server or network issues
const (
	CodeUnknown             Code = -1000
	CodeDisconnected        Code = -1001
	CodeUnauthorized        Code = -1002
	CodeTooManyRequests     Code = -1003
	CodeUnexpectedResponse  Code = -1006
	CodeTimeout             Code = -1007
	CodeServerBusy          Code = -1008
	CodeInvalidMessage      Code = -1013
	CodeUnknownOrderComp    Code = -1014
	CodeTooManyOrders       Code = -1015
	CodeServiceShuttingDown Code = -1016
	CodeUnsupportedOp       Code = -1020
	CodeInvalidTimestamp    Code = -1021
	CodeInvalidSignature    Code = -1022
	CodeCompIDInUse         Code = -1033
	CodeTooManyConnections  Code = -1034
	CodeLoggedOut           Code = -1035
)

// Request issues
const (
	CodeIllegalChars              Code = -1100
	CodeTooManyParameters         Code = -1101
	CodeMandatoryParamEmpty       Code = -1102
	CodeUnknownParam              Code = -1103
	CodeUnreadParameters          Code = -1104
	CodeParamEmpty                Code = -1105
	CodeParamNotRequired          Code = -1106
	CodeParamOverflow             Code = -1108
	CodeBadPrecision              Code = -1111
	CodeNoDepth                   Code = -1112
	CodeTIFNotRequired            Code = -1114
	CodeInvalidTIF                Code = -1115
	CodeInvalidOrderType          Code = -1116
	CodeInvalidSide               Code = -1117
	CodeEmptyNewClientOrderID     Code = -1118
	CodeEmptyOrigClientOrderID    Code = -1119
	CodeBadInterval               Code = -1120
	CodeBadSymbol                 Code = -1121
	CodeInvalidSymbolStatus       Code = -1122
	CodeInvalidListenKey          Code = -1125
	CodeMoreThanXXHours           Code = -1127
	CodeOptionalParamsBadCombo    Code = -1128
	CodeInvalidParameter          Code = -1130
	CodeBadStrategyType           Code = -1134
	CodeInvalidJSON               Code = -1135
	CodeInvalidTickerType         Code = -1139
	CodeInvalidCancelRestrictions Code = -1145
	CodeDuplicateSymbols          Code = -1151
	CodeInvalidSBEHeader          Code = -1152
	CodeUnsupportedSchemaID       Code = -1153
	CodeSBEDisabled               Code = -1155
	CodeOCOOrderTypeRejected      Code = -1158
	CodeOCOIcebergQtyTIF          Code = -1160
	CodeDeprecatedSchema          Code = -1161
	CodeBuyOCOLimitMustBeBelow    Code = -1165
	CodeSellOCOLimitMustBeAbove   Code = -1166
	CodeBothOCOOrdersNotLimit     Code = -1168
	CodeInvalidTagNumber          Code = -1169
	CodeTagNotDefined             Code = -1170
	CodeTagAppearsMoreThanOnce    Code = -1171
	CodeTagOutOfOrder             Code = -1172
	CodeGroupFieldsOutOfOrder     Code = -1173
	CodeInvalidComponent          Code = -1174
	CodeResetSeqNumSupport        Code = -1175
	CodeAlreadyLoggedIn           Code = -1176
	CodeGarbledMessage            Code = -1177
	CodeBadSenderCompID           Code = -1178
	CodeBadSeqNum                 Code = -1179
	CodeExpectedLogon             Code = -1180
	CodeTooManyMessages           Code = -1181
	CodeParamsBadCombo            Code = -1182
	CodeInvalidRequestID          Code = -1190
	CodeTooManySubscriptions      Code = -1191
	CodeInvalidTimeUnit           Code = -1194
)

// Order and account rejections
const (
	CodeNewOrderRejected    Code = -2010
	CodeCancelRejected      Code = -2011
	CodeNoSuchOrder         Code = -2013
	CodeBadAPIKeyFormat     Code = -2014
	CodeRejectedMBXKey      Code = -2015
	CodeNoTradingWindow     Code = -2016
	CodeOrderArchived       Code = -2026
	CodeOrderAmendRejected  Code = -2038
	CodeClientOrderIDExists Code = -2039
)

var codeNames = map[Code]string{
	CodeUnknown:                   "UNKNOWN",
	CodeDisconnected:              "DISCONNECTED",
	CodeUnauthorized:              "UNAUTHORIZED",
	CodeTooManyRequests:           "TOO_MANY_REQUESTS",
	CodeUnexpectedResponse:        "UNEXPECTED_RESP",
	CodeTimeout:                   "TIMEOUT",
	CodeServerBusy:                "SERVER_BUSY",
	CodeInvalidMessage:            "INVALID_MESSAGE",
	CodeUnknownOrderComp:          "UNKNOWN_ORDER_COMPOSITION",
	CodeTooManyOrders:             "TOO_MANY_ORDERS",
	CodeServiceShuttingDown:       "SERVICE_SHUTTING_DOWN",
	CodeUnsupportedOp:             "UNSUPPORTED_OPERATION",
	CodeInvalidTimestamp:          "INVALID_TIMESTAMP",
	CodeInvalidSignature:          "INVALID_SIGNATURE",
	CodeCompIDInUse:               "COMP_ID_IN_USE",
	CodeTooManyConnections:        "TOO_MANY_CONNECTIONS",
	CodeLoggedOut:                 "LOGGED_OUT",
	CodeIllegalChars:              "ILLEGAL_CHARS",
	CodeTooManyParameters:         "TOO_MANY_PARAMETERS",
	CodeMandatoryParamEmpty:       "MANDATORY_PARAM_EMPTY_OR_MALFORMED",
	CodeUnknownParam:              "UNKNOWN_PARAM",
	CodeUnreadParameters:          "UNREAD_PARAMETERS",
	CodeParamEmpty:                "PARAM_EMPTY",
	CodeParamNotRequired:          "PARAM_NOT_REQUIRED",
	CodeParamOverflow:             "PARAM_OVERFLOW",
	CodeBadPrecision:              "BAD_PRECISION",
	CodeNoDepth:                   "NO_DEPTH",
	CodeTIFNotRequired:            "TIF_NOT_REQUIRED",
	CodeInvalidTIF:                "INVALID_TIF",
	CodeInvalidOrderType:          "INVALID_ORDER_TYPE",
	CodeInvalidSide:               "INVALID_SIDE",
	CodeEmptyNewClientOrderID:     "EMPTY_NEW_CL_ORD_ID",
	CodeEmptyOrigClientOrderID:    "EMPTY_ORG_CL_ORD_ID",
	CodeBadInterval:               "BAD_INTERVAL",
	CodeBadSymbol:                 "BAD_SYMBOL",
	CodeInvalidSymbolStatus:       "INVALID_SYMBOLSTATUS",
	CodeInvalidListenKey:          "INVALID_LISTEN_KEY",
	CodeMoreThanXXHours:           "MORE_THAN_XX_HOURS",
	CodeOptionalParamsBadCombo:    "OPTIONAL_PARAMS_BAD_COMBO",
	CodeInvalidParameter:          "INVALID_PARAMETER",
	CodeBadStrategyType:           "BAD_STRATEGY_TYPE",
	CodeInvalidJSON:               "INVALID_JSON",
	CodeInvalidTickerType:         "INVALID_TICKER_TYPE",
	CodeInvalidCancelRestrictions: "INVALID_CANCEL_RESTRICTIONS",
	CodeDuplicateSymbols:          "DUPLICATE_SYMBOLS",
	CodeInvalidSBEHeader:          "INVALID_SBE_HEADER",
	CodeUnsupportedSchemaID:       "UNSUPPORTED_SCHEMA_ID",
	CodeSBEDisabled:               "SBE_DISABLED",
	CodeOCOOrderTypeRejected:      "OCO_ORDER_TYPE_REJECTED",
	CodeOCOIcebergQtyTIF:          "OCO_ICEBERGQTY_TIMEINFORCE",
	CodeDeprecatedSchema:          "DEPRECATED_SCHEMA",
	CodeBuyOCOLimitMustBeBelow:    "BUY_OCO_LIMIT_MUST_BE_BELOW",
	CodeSellOCOLimitMustBeAbove:   "SELL_OCO_LIMIT_MUST_BE_ABOVE",
	CodeBothOCOOrdersNotLimit:     "BOTH_OCO_ORDERS_CANNOT_BE_LIMIT",
	CodeInvalidTagNumber:          "INVALID_TAG_NUMBER",
	CodeTagNotDefined:             "TAG_NOT_DEFINED_IN_MESSAGE",
	CodeTagAppearsMoreThanOnce:    "TAG_APPEARS_MORE_THAN_ONCE",
	CodeTagOutOfOrder:             "TAG_OUT_OF_ORDER",
	CodeGroupFieldsOutOfOrder:     "GROUP_FIELDS_OUT_OF_ORDER",
	CodeInvalidComponent:          "INVALID_COMPONENT",
	CodeResetSeqNumSupport:        "RESET_SEQ_NUM_SUPPORT",
	CodeAlreadyLoggedIn:           "ALREADY_LOGGED_IN",
	CodeGarbledMessage:            "GARBLED_MESSAGE",
	CodeBadSenderCompID:           "BAD_SENDER_COMPID",
	CodeBadSeqNum:                 "BAD_SEQ_NUM",
	CodeExpectedLogon:             "EXPECTED_LOGON",
	CodeTooManyMessages:           "TOO_MANY_MESSAGES",
	CodeParamsBadCombo:            "PARAMS_BAD_COMBO",
	CodeInvalidRequestID:          "INVALID_REQUEST_ID",
	CodeTooManySubscriptions:      "TOO_MANY_SUBSCRIPTIONS",
	CodeInvalidTimeUnit:           "INVALID_TIME_UNIT",
	CodeNewOrderRejected:          "NEW_ORDER_REJECTED",
	CodeCancelRejected:            "CANCEL_REJECTED",
	CodeNoSuchOrder:               "NO_SUCH_ORDER",
	CodeBadAPIKeyFormat:           "BAD_API_KEY_FMT",
	CodeRejectedMBXKey:            "REJECTED_MBX_KEY",
	CodeNoTradingWindow:           "NO_TRADING_WINDOW",
	CodeOrderArchived:             "ORDER_ARCHIVED",
	CodeOrderAmendRejected:        "ORDER_AMEND_REJECTED",
	CodeClientOrderIDExists:       "CLIENT_ORDER_ID_EXISTS",
}

// Valid reports whether c is a documented code
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// UnmarshalJSON rejects codes outside the documented enumeration
func (c *Code) UnmarshalJSON(data []byte) error {
	n, err := strconv.Atoi(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("invalid server error code %s: %w", data, err)
	}
	code := Code(n)
	if !code.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCode, n)
	}
	*c = code
	return nil
}
