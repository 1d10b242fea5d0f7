package iac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archfind/arch-backend/internal/design/domain"
)

func sqlQuestionnaire() domain.Questionnaire {
	return domain.Questionnaire{
		ProjectName: "Demo Shop",
		Description: "internal demo",
		Traffic:     domain.TrafficMedium,
		Sensitivity: domain.SensitivityInternal,
		Compute:     domain.ComputeVMs,
		Database:    domain.DatabaseSQL,
		Storage:     domain.StorageModerate,
		Reach:       domain.ReachMultiRegion,
		Budget:      domain.BudgetMedium,
	}
}

func sqlSelection() domain.ServiceSelection {
	return domain.ServiceSelection{
		domain.CategoryCompute:      "Amazon EC2",
		domain.CategoryDatabase:     "Amazon RDS (PostgreSQL)",
		domain.CategoryStorage:      "Amazon S3",
		domain.CategoryLoadBalancer: "Application Load Balancer",
		domain.CategoryCDN:          "Amazon CloudFront",
		domain.CategoryDNS:          "Amazon Route 53",
		domain.CategoryMonitoring:   "Amazon CloudWatch",
	}
}

func TestRenderTerraform(t *testing.T) {
	q := sqlQuestionnaire()
	sel := sqlSelection()

	t.Run("byte stable", func(t *testing.T) {
		prefs := domain.UserPreferences{"rds_storage_gb": 100, "ec2_instance_type": "m5.large"}
		assert.Equal(t, RenderTerraform(q, sel, prefs), RenderTerraform(q, sel, prefs))
	})

	t.Run("defaults fill absent overrides", func(t *testing.T) {
		out := RenderTerraform(q, sel, nil)
		assert.Contains(t, out, `instance_type = "t3.medium"`)
		assert.Contains(t, out, `instance_class    = "db.t3.micro"`)
		assert.Contains(t, out, "allocated_storage = 20")
	})

	t.Run("overrides replace defaults", func(t *testing.T) {
		out := RenderTerraform(q, sel, domain.UserPreferences{
			"rds_instance_class": "db.r5.xlarge",
			"rds_storage_gb":     100,
		})
		assert.Contains(t, out, `instance_class    = "db.r5.xlarge"`)
		assert.Contains(t, out, "allocated_storage = 100")
		assert.NotContains(t, out, "db.t3.micro")
	})

	t.Run("one resource per selected category", func(t *testing.T) {
		out := RenderTerraform(q, sel, nil)
		assert.Contains(t, out, `resource "aws_instance" "demo_shop_app"`)
		assert.Contains(t, out, `resource "aws_db_instance" "demo_shop_db"`)
		assert.Contains(t, out, `resource "aws_s3_bucket" "demo_shop_bucket"`)
		assert.Contains(t, out, `resource "aws_lb" "demo_shop_alb"`)
		assert.Contains(t, out, `resource "aws_cloudfront_distribution" "demo_shop_cdn"`)
		assert.Contains(t, out, `resource "aws_route53_zone" "demo_shop_zone"`)
		assert.Contains(t, out, `resource "aws_cloudwatch_log_group" "demo_shop_logs"`)
	})

	t.Run("unselected categories are absent", func(t *testing.T) {
		min := domain.ServiceSelection{
			domain.CategoryCompute:    "Amazon EC2",
			domain.CategoryStorage:    "Amazon S3",
			domain.CategoryMonitoring: "Amazon CloudWatch",
		}
		out := RenderTerraform(q, min, nil)
		assert.NotContains(t, out, "aws_db_instance")
		assert.NotContains(t, out, "aws_lb")
		assert.NotContains(t, out, "aws_cloudfront_distribution")
	})

	t.Run("braces balance", func(t *testing.T) {
		out := RenderTerraform(q, sel, nil)
		assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
	})

	t.Run("versioning toggles the bucket versioning resource", func(t *testing.T) {
		on := RenderTerraform(q, sel, nil)
		assert.Contains(t, on, "aws_s3_bucket_versioning")

		off := RenderTerraform(q, sel, domain.UserPreferences{"s3_versioning": false})
		assert.NotContains(t, off, "aws_s3_bucket_versioning")
	})

	t.Run("serverless compute emits lambda plus its role", func(t *testing.T) {
		sq := sqlQuestionnaire()
		sq.Compute = domain.ComputeServerless
		s := sqlSelection()
		s[domain.CategoryCompute] = "AWS Lambda"

		out := RenderTerraform(sq, s, domain.UserPreferences{"lambda_memory_mb": 512})
		assert.Contains(t, out, `resource "aws_lambda_function"`)
		assert.Contains(t, out, "memory_size   = 512")
		assert.Contains(t, out, `resource "aws_iam_role" "lambda_exec"`)
	})
}

func TestRenderCloudFormation(t *testing.T) {
	q := sqlQuestionnaire()
	sel := sqlSelection()

	t.Run("header and resources per category", func(t *testing.T) {
		out := RenderCloudFormation(q, sel, nil)
		assert.True(t, strings.HasPrefix(out, "AWSTemplateFormatVersion: \"2010-09-09\"\n"))
		assert.Contains(t, out, "AWS::EC2::Instance")
		assert.Contains(t, out, "AWS::RDS::DBInstance")
		assert.Contains(t, out, "AWS::S3::Bucket")
		assert.Contains(t, out, "AWS::ElasticLoadBalancingV2::LoadBalancer")
		assert.Contains(t, out, "AWS::CloudFront::Distribution")
		assert.Contains(t, out, "AWS::Route53::HostedZone")
		assert.Contains(t, out, "AWS::Logs::LogGroup")
	})

	t.Run("overrides flow into both dialects", func(t *testing.T) {
		prefs := domain.UserPreferences{"rds_instance_class": "db.r5.xlarge"}
		assert.Contains(t, RenderCloudFormation(q, sel, prefs), "DBInstanceClass: db.r5.xlarge")
		assert.Contains(t, RenderTerraform(q, sel, prefs), "db.r5.xlarge")
	})

	t.Run("buckets always block public access", func(t *testing.T) {
		out := RenderCloudFormation(q, sel, domain.UserPreferences{"s3_versioning": false, "s3_encryption": false})
		assert.Contains(t, out, "PublicAccessBlockConfiguration")
		assert.NotContains(t, out, "VersioningConfiguration")
		assert.NotContains(t, out, "BucketEncryption")
	})
}

func TestRenderDispatch(t *testing.T) {
	q := sqlQuestionnaire()
	sel := sqlSelection()

	tf, err := Render(FormatTerraform, q, sel, nil)
	require.NoError(t, err)
	assert.Contains(t, tf, "terraform {")

	cfn, err := Render(FormatCloudFormation, q, sel, nil)
	require.NoError(t, err)
	assert.Contains(t, cfn, "AWSTemplateFormatVersion")

	_, err = Render("helm", q, sel, nil)
	assert.Error(t, err)

	_, err = ParseFormat("helm")
	assert.Error(t, err)
}

func TestPrefCoercion(t *testing.T) {
	assert.Equal(t, "40", pref(domain.UserPreferences{"rds_storage_gb": float64(40)}, "rds_storage_gb"))
	assert.Equal(t, "40", pref(domain.UserPreferences{"rds_storage_gb": 40}, "rds_storage_gb"))
	assert.Equal(t, "false", pref(domain.UserPreferences{"rds_multi_az": false}, "rds_multi_az"))
	assert.Equal(t, "db.t3.micro", pref(domain.UserPreferences{"rds_instance_class": ""}, "rds_instance_class"))
	assert.Equal(t, "0.5", pref(domain.UserPreferences{"rds_storage_gb": 0.5}, "rds_storage_gb"))
}

func TestResourceName(t *testing.T) {
	assert.Equal(t, "my-shop", resourceName("My Shop"))
	assert.Equal(t, "shop-2", resourceName("shop--2"))
	assert.Equal(t, "demo-app", resourceName("  Demo App!  "))
	assert.Equal(t, "my_shop_bucket_versioning", tfName("my-shop", "bucket-versioning"))
}
