package extractor

import (
	"fmt"

	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	keyTracking           = "NSPrivacyTracking"
	keyTrackingDomains    = "NSPrivacyTrackingDomains"
	keyCollectedDataTypes = "NSPrivacyCollectedDataTypes"
	keyCollectedDataType  = "NSPrivacyCollectedDataType"
	keyCollectedLinked    = "NSPrivacyCollectedDataTypeLinked"
	keyCollectedTracking  = "NSPrivacyCollectedDataTypeTracking"
	keyCollectedPurposes  = "NSPrivacyCollectedDataTypePurposes"
	keyAccessedAPITypes   = "NSPrivacyAccessedAPITypes"
	keyAccessedAPIType    = "NSPrivacyAccessedAPIType"
	keyAccessedReasons    = "NSPrivacyAccessedAPITypeReasons"
)

// privacyInfo reads the library's PrivacyInfo.xcprivacy. A missing manifest
// is reported as not present. A manifest that does not decode to a dictionary is an error.
func (x *extraction) privacyInfo(lib domain.LibraryInfo) (*domain.PrivacyInfo, error) {
	entry, ok := x.archive.FindFirst(domain.ResourceQuery{Scope: lib.Scope(), Suffix: privacyManifestSuffix})
	if !ok {
		return &domain.PrivacyInfo{}, nil
	}

	data, err := x.archive.Read(entry)
	if err != nil {
		return nil, err
	}
	v, err := x.decoder.Decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPrivacyManifestInvalid.Error()), "entry", entry.Name)
	}
	dict, ok := v.(map[string]any)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrPrivacyManifestInvalid, "entry", entry.Name), "type", fmt.Sprintf("%T", v))
	}

	info, skipped := ParsePrivacyManifest(dict)
	for _, reason := range skipped {
		x.skip(lib.LibraryIdentifier, reason)
	}
	return info, nil
}

// ParsePrivacyManifest converts a decoded privacy manifest. Records missing
// a required field are dropped and their reasons returned.
func ParsePrivacyManifest(dict map[string]any) (*domain.PrivacyInfo, []string) {
	info := &domain.PrivacyInfo{
		Present:  true,
		Tracking: boolField(dict, keyTracking),
	}
	if domains, ok := dict[keyTrackingDomains].([]any); ok {
		info.TrackingDomains = stringList(domains)
	}

	var skipped []string
	if records, ok := dict[keyCollectedDataTypes].([]any); ok {
		info.CollectedDataTypes = make(domain.List[domain.CollectedDataType], 0, len(records))
		for i, raw := range records {
			outcome := parseCollectedDataType(raw)
			value, ok := outcome.Value()
			if !ok {
				skipped = append(skipped, recordReason(keyCollectedDataTypes, i, outcome.Reason()))
				continue
			}
			info.CollectedDataTypes = append(info.CollectedDataTypes, value)
		}
	}
	if records, ok := dict[keyAccessedAPITypes].([]any); ok {
		info.AccessedAPITypes = make(domain.List[domain.AccessedAPIType], 0, len(records))
		for i, raw := range records {
			outcome := parseAccessedAPIType(raw)
			value, ok := outcome.Value()
			if !ok {
				skipped = append(skipped, recordReason(keyAccessedAPITypes, i, outcome.Reason()))
				continue
			}
			info.AccessedAPITypes = append(info.AccessedAPITypes, value)
		}
	}
	return info, skipped
}

func recordReason(list string, index int, reason string) string {
	return fmt.Sprintf("%s[%d]: %s", list, index, reason)
}

func parseCollectedDataType(raw any) domain.Outcome[domain.CollectedDataType] {
	dict, ok := raw.(map[string]any)
	if !ok {
		return domain.Skipped[domain.CollectedDataType]("not a dictionary")
	}
	dataType, ok := dict[keyCollectedDataType].(string)
	if !ok {
		return domain.Skipped[domain.CollectedDataType]("missing " + keyCollectedDataType)
	}
	linked, ok := dict[keyCollectedLinked].(bool)
	if !ok {
		return domain.Skipped[domain.CollectedDataType]("missing " + keyCollectedLinked)
	}
	tracking, ok := dict[keyCollectedTracking].(bool)
	if !ok {
		return domain.Skipped[domain.CollectedDataType]("missing " + keyCollectedTracking)
	}
	purposes, ok := dict[keyCollectedPurposes].([]any)
	if !ok {
		return domain.Skipped[domain.CollectedDataType]("missing " + keyCollectedPurposes)
	}
	return domain.Included(domain.CollectedDataType{
		DataType:     dataType,
		LinkedToUser: linked,
		Tracking:     tracking,
		Purposes:     stringList(purposes),
	})
}

func parseAccessedAPIType(raw any) domain.Outcome[domain.AccessedAPIType] {
	dict, ok := raw.(map[string]any)
	if !ok {
		return domain.Skipped[domain.AccessedAPIType]("not a dictionary")
	}
	api, ok := dict[keyAccessedAPIType].(string)
	if !ok {
		return domain.Skipped[domain.AccessedAPIType]("missing " + keyAccessedAPIType)
	}
	reasons, ok := dict[keyAccessedReasons].([]any)
	if !ok {
		return domain.Skipped[domain.AccessedAPIType]("missing " + keyAccessedReasons)
	}
	return domain.Included(domain.AccessedAPIType{
		API:     api,
		Reasons: stringList(reasons),
	})
}
