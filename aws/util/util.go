package util

import (
	"os"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// NameTagKey is the tag used as the lookup key for every resource this
// module manages.
const NameTagKey = "Name"

// ExpandToEc2Tags converts a key/value map into the tag slice the EC2 API
// expects. Keys are emitted in sorted order so request bodies are stable.
func ExpandToEc2Tags(tags map[string]string) []ec2types.Tag {
	if len(tags) == 0 {
		return nil
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expanded := make([]ec2types.Tag, 0, len(keys))
	for _, k := range keys {
		expanded = append(expanded, ec2types.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}

	return expanded
}

// FlattenEc2Tags converts an EC2 tag slice back into a map.
func FlattenEc2Tags(tags []ec2types.Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}
	return m
}

// TagValue returns the value of the named tag, or the empty string when the
// tag is not present.
func TagValue(tags []ec2types.Tag, key string) string {
	for _, t := range tags {
		if aws.ToString(t.Key) == key {
			return aws.ToString(t.Value)
		}
	}
	return ""
}

// GetenvAny returns the first non-empty value among the given environment
// variables.
func GetenvAny(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// StrSliceContains checks if a given string is contained in a slice.
func StrSliceContains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// MergeNameTag layers the implicit Name tag over the user-supplied tags.
// A user tag named "Name" would fight the lookup key, so the explicit name
// always wins.
func MergeNameTag(name string, tags map[string]string) map[string]string {
	merged := make(map[string]string, len(tags)+1)
	for k, v := range tags {
		merged[k] = v
	}
	merged[NameTagKey] = name
	return merged
}
