package util

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandToEc2TagsIsSortedAndStable(t *testing.T) {
	tags := ExpandToEc2Tags(map[string]string{"env": "stage", "Name": "public", "team": "infra"})

	require.Len(t, tags, 3)
	assert.Equal(t, "Name", aws.ToString(tags[0].Key))
	assert.Equal(t, "env", aws.ToString(tags[1].Key))
	assert.Equal(t, "team", aws.ToString(tags[2].Key))
	assert.Equal(t, "public", aws.ToString(tags[0].Value))
}

func TestExpandToEc2TagsEmpty(t *testing.T) {
	assert.Nil(t, ExpandToEc2Tags(nil))
	assert.Nil(t, ExpandToEc2Tags(map[string]string{}))
}

func TestMergeNameTagWinsOverUserTag(t *testing.T) {
	merged := MergeNameTag("public", map[string]string{"Name": "sneaky", "env": "stage"})

	assert.Equal(t, "public", merged["Name"])
	assert.Equal(t, "stage", merged["env"])
}

func TestFlattenAndTagValue(t *testing.T) {
	tags := []ec2types.Tag{
		{Key: aws.String("Name"), Value: aws.String("public")},
		{Key: aws.String("env"), Value: aws.String("stage")},
	}

	assert.Equal(t, map[string]string{"Name": "public", "env": "stage"}, FlattenEc2Tags(tags))
	assert.Equal(t, "public", TagValue(tags, "Name"))
	assert.Equal(t, "", TagValue(tags, "missing"))
}

func TestStrSliceContains(t *testing.T) {
	assert.True(t, StrSliceContains([]string{"present", "absent"}, "absent"))
	assert.False(t, StrSliceContains([]string{"present", "absent"}, "latest"))
}
