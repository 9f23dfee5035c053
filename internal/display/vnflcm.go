package display

// Fields of a VNF LCM operation occurrence (VnfLcmOpOcc) that the CLI knows
// how to display.
var opOccColumns = NewColumnMap(
	"id", "ID",
	"operationState", "Operation State",
	"stateEnteredTime", "State Entered Time",
	"startTime", "Start Time",
	"vnfInstanceId", "VNF Instance ID",
	"operation", "Operation",
	"isAutomaticInvocation", "Is Automatic Invocation",
	"isCancelPending", "Is Cancel Pending",
	"error", "Error",
	"_links", "Links",
)

var opOccListColumns = NewColumnMap(
	"id", "ID",
	"operationState", "Operation State",
	"vnfInstanceId", "VNF Instance ID",
	"operation", "Operation",
)

var opOccMixedCase = NewFieldSet(
	"operationState",
	"stateEnteredTime",
	"startTime",
	"vnfInstanceId",
	"isAutomaticInvocation",
	"isCancelPending",
)

var opOccListMixedCase = NewFieldSet(
	"operationState",
	"vnfInstanceId",
)

var opOccFormatters = Formatters{
	"error":  FormatComplexData,
	"_links": FormatComplexData,
}

func init() {
	// A mixed-case field without a column would silently never display.
	if err := opOccColumns.ValidateMixedCase(opOccMixedCase); err != nil {
		panic(err)
	}
	if err := opOccListColumns.ValidateMixedCase(opOccListMixedCase); err != nil {
		panic(err)
	}
}

// OpOccColumns returns the detail column map for operation occurrences.
func OpOccColumns() ColumnMap {
	return append(ColumnMap(nil), opOccColumns...)
}

// OpOccListColumns returns the column map used when listing operation
// occurrences.
func OpOccListColumns() ColumnMap {
	return append(ColumnMap(nil), opOccListColumns...)
}

// OpOccMixedCaseFields returns the operation-occurrence fields that are
// spelled in camelCase by the API.
func OpOccMixedCaseFields() FieldSet {
	return opOccMixedCase
}

// OpOccFormatters returns the formatter registry for operation occurrences.
func OpOccFormatters() Formatters {
	out := make(Formatters, len(opOccFormatters))
	for k, v := range opOccFormatters {
		out[k] = v
	}
	return out
}

// View bundles everything needed to present one resource kind.
type View struct {
	Columns    ColumnMap
	MixedCase  FieldSet
	Formatters Formatters
	// Hidden lists fields that are never shown even when present.
	Hidden []string
}

// OpOccView is the detail view of an operation occurrence.
func OpOccView() View {
	return View{
		Columns:    OpOccColumns(),
		MixedCase:  OpOccMixedCaseFields(),
		Formatters: OpOccFormatters(),
	}
}

// OpOccListView is the list view of operation occurrences.
func OpOccListView() View {
	return View{
		Columns:    OpOccListColumns(),
		MixedCase:  opOccListMixedCase,
		Formatters: OpOccFormatters(),
	}
}

// Project selects the record's columns and extracts their values.
func (v View) Project(record Record) (Projection, []interface{}) {
	p := SelectColumnsExcept(record, v.Columns, v.Hidden...)
	return p, ItemProperties(record, p.Fields, v.Formatters, v.MixedCase)
}
