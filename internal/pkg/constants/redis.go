package constants

// Redis key formats
const (
	// Tracking state
	KeyTruckLocation   = "truck:location:%s"         // Format: truck:location:{truck_id}
	KeyLocationHistory = "truck:location:history:%s" // Format: truck:location:history:{truck_id}
	KeyTruckSession    = "truck:session:%s"          // Format: truck:session:{truck_id}

	// KeyTrucksGeo is the geo set of all accepted current locations.
	KeyTrucksGeo = "trucks:geo"
)

// Redis hash fields
const (
	FieldSource     = "source"
	FieldLatitude   = "lat"
	FieldLongitude  = "lng"
	FieldAccuracy   = "accuracy"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldState      = "state"
	FieldConfidence = "confidence"
	FieldNotes      = "notes"
	FieldReportedBy = "reported_by"
	FieldTimestamp  = "ts"

	FieldSessionID = "session_id"
	FieldIsActive  = "is_active"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)
