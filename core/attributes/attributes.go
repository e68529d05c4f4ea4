// Package attributes builds the merged device-attribute map the adapter
// mirrors between the two SDKs.
package attributes

// Attribute keys mirrored between the engagement and places SDKs.
const (
	// KeyNamedUser carries the engagement named-user id.
	KeyNamedUser = "engage.nameduser.id"
	// KeyChannel carries the engagement channel id.
	KeyChannel = "engage.channel.id"
	// KeyInstanceID associates the places application instance identifier
	// with the engagement identity store.
	KeyInstanceID = "places.instance.id"
)

// Merge combines both SDKs' attribute snapshots and overlays the caller's
// identifiers. Places attributes win over engagement attributes on key
// collisions, matching the places SDK being the fresher snapshot. An empty
// id removes its key from the result.
func Merge(engagementAttrs, placesAttrs map[string]string, namedUserID, channelID string) map[string]string {
	merged := make(map[string]string, len(engagementAttrs)+len(placesAttrs)+2)
	for k, v := range engagementAttrs {
		merged[k] = v
	}
	for k, v := range placesAttrs {
		merged[k] = v
	}

	if namedUserID != "" {
		merged[KeyNamedUser] = namedUserID
	} else {
		delete(merged, KeyNamedUser)
	}

	if channelID != "" {
		merged[KeyChannel] = channelID
	} else {
		delete(merged, KeyChannel)
	}

	return merged
}
