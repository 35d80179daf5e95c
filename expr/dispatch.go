package expr

import "github.com/qpanda/semfilter/value"

// variableNameByKind and variableKindByName translate between a $kind
// placeholder's surface spelling and its value.Kind, for every kind a
// variable placeholder may range over. SemanticVersionRequirement and
// Port are deliberately absent: neither ever ranges over a line token,
// so neither is spelled as a variable in source text.
var variableNameByKind = map[value.Kind]string{
	value.KindInteger:           "integer",
	value.KindFloat:             "float",
	value.KindID:                "id",
	value.KindDate:               "date",
	value.KindTime:               "time",
	value.KindDateTime:           "dateTime",
	value.KindLocalDateTime:      "localDateTime",
	value.KindIPAddress:          "ipAddress",
	value.KindIPv4Address:        "ipv4Address",
	value.KindIPv6Address:        "ipv6Address",
	value.KindIPSocketAddress:    "ipSocketAddress",
	value.KindIPv4SocketAddress:  "ipv4SocketAddress",
	value.KindIPv6SocketAddress:  "ipv6SocketAddress",
	value.KindIPNetwork:          "ipNetwork",
	value.KindIPv4Network:        "ipv4Network",
	value.KindIPv6Network:        "ipv6Network",
	value.KindSemanticVersion:    "semanticVersion",
}

var variableKindByName = func() map[string]value.Kind {
	m := make(map[string]value.Kind, len(variableNameByKind))
	for k, n := range variableNameByKind {
		m[n] = k
	}
	return m
}()

// functionSignatures lists the closed set of function/input-kind pairs
// spec'd in the function dispatch table, and the output kind each
// produces.
var functionSignatures = map[string]map[value.Kind]value.Kind{
	"port": {
		value.KindIPSocketAddress:   value.KindPort,
		value.KindIPv4SocketAddress: value.KindPort,
		value.KindIPv6SocketAddress: value.KindPort,
	},
	"ip": {
		value.KindIPSocketAddress:   value.KindIPAddress,
		value.KindIPv4SocketAddress: value.KindIPv4Address,
		value.KindIPv6SocketAddress: value.KindIPv6Address,
	},
}

// functionResultKind looks up the output kind of applying name to a
// variable of kind input.
func functionResultKind(name string, input value.Kind) (value.Kind, bool) {
	sigs, ok := functionSignatures[name]
	if !ok {
		return 0, false
	}
	out, ok := sigs[input]
	return out, ok
}

type dispatchEntry struct {
	comparator  Comparator
	literalKind value.Kind
}

func basicEntries(k value.Kind) []dispatchEntry {
	return []dispatchEntry{
		{Eq, k}, {Ne, k}, {Gt, k}, {Ge, k}, {Lt, k}, {Le, k},
	}
}

// conditionDispatch is the (selector result kind × comparator) -> literal
// kind table from the comparator dispatch documentation: the closed,
// exhaustive set of type-consistent conditions. A lookup miss is an
// ExpressionTypeError.
var conditionDispatch = buildConditionDispatch()

func buildConditionDispatch() map[value.Kind]map[Comparator]value.Kind {
	table := map[value.Kind]map[Comparator]value.Kind{
		value.KindInteger: entries(basicEntries(value.KindInteger)),
		value.KindFloat:   entries(basicEntries(value.KindFloat)),
		value.KindID: entries(append(basicEntries(value.KindID),
			dispatchEntry{Contains, value.KindID},
			dispatchEntry{StartsWith, value.KindID},
			dispatchEntry{EndsWith, value.KindID},
		)),
		value.KindDate:          entries(basicEntries(value.KindDate)),
		value.KindTime:          entries(basicEntries(value.KindTime)),
		value.KindDateTime:      entries(basicEntries(value.KindDateTime)),
		value.KindLocalDateTime: entries(basicEntries(value.KindLocalDateTime)),
		value.KindIPAddress: entries(append(basicEntries(value.KindIPAddress),
			dispatchEntry{In, value.KindIPNetwork},
			dispatchEntry{NotIn, value.KindIPNetwork},
		)),
		value.KindIPv4Address: entries(append(basicEntries(value.KindIPv4Address),
			dispatchEntry{In, value.KindIPv4Network},
			dispatchEntry{NotIn, value.KindIPv4Network},
		)),
		value.KindIPv6Address: entries(append(basicEntries(value.KindIPv6Address),
			dispatchEntry{In, value.KindIPv6Network},
			dispatchEntry{NotIn, value.KindIPv6Network},
		)),
		value.KindIPSocketAddress:   entries(basicEntries(value.KindIPSocketAddress)),
		value.KindIPv4SocketAddress: entries(basicEntries(value.KindIPv4SocketAddress)),
		value.KindIPv6SocketAddress: entries(basicEntries(value.KindIPv6SocketAddress)),
		value.KindIPNetwork:         entries(basicEntries(value.KindIPNetwork)),
		value.KindIPv4Network:       entries(basicEntries(value.KindIPv4Network)),
		value.KindIPv6Network:       entries(basicEntries(value.KindIPv6Network)),
		value.KindSemanticVersion: entries(append(basicEntries(value.KindSemanticVersion),
			dispatchEntry{Matches, value.KindSemanticVersionRequirement},
		)),
		value.KindPort: entries(basicEntries(value.KindPort)),
	}
	return table
}

func entries(es []dispatchEntry) map[Comparator]value.Kind {
	m := make(map[Comparator]value.Kind, len(es))
	for _, e := range es {
		m[e.comparator] = e.literalKind
	}
	return m
}

// literalKindFor looks up the literal kind a condition of the given
// selector result kind and comparator must carry.
func literalKindFor(selectorKind value.Kind, cmp Comparator) (value.Kind, bool) {
	byComparator, ok := conditionDispatch[selectorKind]
	if !ok {
		return 0, false
	}
	k, ok := byComparator[cmp]
	return k, ok
}
