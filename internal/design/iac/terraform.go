package iac

import (
	"fmt"
	"strings"

	"github.com/archfind/arch-backend/internal/design/domain"
)

// RenderTerraform emits one resource block per selected service category,
// iterating the canonical category order so output is byte-stable.
func RenderTerraform(q domain.Questionnaire, services domain.ServiceSelection, prefs domain.UserPreferences) string {
	name := resourceName(q.ProjectName)
	var b strings.Builder

	fmt.Fprintf(&b, "# Generated infrastructure for %s\n", q.ProjectName)
	b.WriteString("terraform {\n  required_providers {\n    aws = {\n      source  = \"hashicorp/aws\"\n      version = \"~> 5.0\"\n    }\n  }\n}\n\n")
	b.WriteString("provider \"aws\" {\n  region = var.aws_region\n}\n\n")
	b.WriteString("variable \"aws_region\" {\n  type    = string\n  default = \"us-east-1\"\n}\n\n")

	for _, cat := range domain.CategoryOrder {
		if _, ok := services[cat]; !ok {
			continue
		}
		switch cat {
		case domain.CategoryCompute:
			writeTerraformCompute(&b, q, name, prefs)
		case domain.CategoryDatabase:
			writeTerraformDatabase(&b, q, name, prefs)
		case domain.CategoryStorage:
			writeTerraformStorage(&b, name, prefs)
		case domain.CategoryLoadBalancer:
			fmt.Fprintf(&b, "resource \"aws_lb\" \"%s\" {\n", tfName(name, "alb"))
			fmt.Fprintf(&b, "  name               = \"%s-alb\"\n", name)
			b.WriteString("  load_balancer_type = \"application\"\n  internal           = false\n}\n\n")
		case domain.CategoryCDN:
			writeTerraformCDN(&b, name, prefs)
		case domain.CategoryDNS:
			fmt.Fprintf(&b, "resource \"aws_route53_zone\" \"%s\" {\n", tfName(name, "zone"))
			fmt.Fprintf(&b, "  name = \"%s.example.com\"\n}\n\n", name)
		case domain.CategoryMonitoring:
			fmt.Fprintf(&b, "resource \"aws_cloudwatch_log_group\" \"%s\" {\n", tfName(name, "logs"))
			fmt.Fprintf(&b, "  name              = \"/%s/app\"\n", name)
			b.WriteString("  retention_in_days = 30\n}\n\n")
		}
	}

	return b.String()
}

func writeTerraformCompute(b *strings.Builder, q domain.Questionnaire, name string, prefs domain.UserPreferences) {
	switch q.Compute {
	case domain.ComputeServerless:
		fmt.Fprintf(b, "resource \"aws_lambda_function\" \"%s\" {\n", tfName(name, "fn"))
		fmt.Fprintf(b, "  function_name = \"%s-fn\"\n", name)
		fmt.Fprintf(b, "  runtime       = \"%s\"\n", pref(prefs, "lambda_runtime"))
		fmt.Fprintf(b, "  memory_size   = %s\n", pref(prefs, "lambda_memory_mb"))
		fmt.Fprintf(b, "  timeout       = %s\n", pref(prefs, "lambda_timeout"))
		b.WriteString("  handler       = \"index.handler\"\n  role          = aws_iam_role.lambda_exec.arn\n  filename      = \"app.zip\"\n}\n\n")
		b.WriteString("resource \"aws_iam_role\" \"lambda_exec\" {\n  name               = \"" + name + "-lambda-exec\"\n  assume_role_policy = data.aws_iam_policy_document.lambda_assume.json\n}\n\n")
		b.WriteString("data \"aws_iam_policy_document\" \"lambda_assume\" {\n  statement {\n    actions = [\"sts:AssumeRole\"]\n    principals {\n      type        = \"Service\"\n      identifiers = [\"lambda.amazonaws.com\"]\n    }\n  }\n}\n\n")
	case domain.ComputeContainers:
		fmt.Fprintf(b, "resource \"aws_ecs_cluster\" \"%s\" {\n", tfName(name, "cluster"))
		fmt.Fprintf(b, "  name = \"%s-cluster\"\n}\n\n", name)
		fmt.Fprintf(b, "resource \"aws_ecs_service\" \"%s\" {\n", tfName(name, "svc"))
		fmt.Fprintf(b, "  name            = \"%s-svc\"\n", name)
		fmt.Fprintf(b, "  cluster         = aws_ecs_cluster.%s.id\n", tfName(name, "cluster"))
		b.WriteString("  launch_type     = \"FARGATE\"\n  desired_count   = 2\n}\n\n")
	case domain.ComputeVMs:
		fmt.Fprintf(b, "resource \"aws_instance\" \"%s\" {\n", tfName(name, "app"))
		b.WriteString("  ami           = data.aws_ami.al2023.id\n")
		fmt.Fprintf(b, "  instance_type = \"%s\"\n", pref(prefs, "ec2_instance_type"))
		b.WriteString("  root_block_device {\n")
		fmt.Fprintf(b, "    volume_size = %s\n", pref(prefs, "ec2_storage_size"))
		fmt.Fprintf(b, "    volume_type = \"%s\"\n", pref(prefs, "ec2_storage_type"))
		b.WriteString("  }\n}\n\n")
		b.WriteString("data \"aws_ami\" \"al2023\" {\n  most_recent = true\n  owners      = [\"amazon\"]\n  filter {\n    name   = \"name\"\n    values = [\"al2023-ami-*-x86_64\"]\n  }\n}\n\n")
	}
}

func writeTerraformDatabase(b *strings.Builder, q domain.Questionnaire, name string, prefs domain.UserPreferences) {
	switch q.Database {
	case domain.DatabaseSQL:
		fmt.Fprintf(b, "resource \"aws_db_instance\" \"%s\" {\n", tfName(name, "db"))
		fmt.Fprintf(b, "  identifier        = \"%s-db\"\n", name)
		fmt.Fprintf(b, "  engine            = \"%s\"\n", pref(prefs, "rds_engine"))
		fmt.Fprintf(b, "  instance_class    = \"%s\"\n", pref(prefs, "rds_instance_class"))
		fmt.Fprintf(b, "  allocated_storage = %s\n", pref(prefs, "rds_storage_gb"))
		fmt.Fprintf(b, "  multi_az          = %s\n", pref(prefs, "rds_multi_az"))
		b.WriteString("  skip_final_snapshot = true\n}\n\n")
	case domain.DatabaseNoSQL:
		fmt.Fprintf(b, "resource \"aws_dynamodb_table\" \"%s\" {\n", tfName(name, "table"))
		fmt.Fprintf(b, "  name         = \"%s-table\"\n", name)
		b.WriteString("  billing_mode = \"PAY_PER_REQUEST\"\n  hash_key     = \"pk\"\n  attribute {\n    name = \"pk\"\n    type = \"S\"\n  }\n}\n\n")
	}
}

func writeTerraformStorage(b *strings.Builder, name string, prefs domain.UserPreferences) {
	fmt.Fprintf(b, "resource \"aws_s3_bucket\" \"%s\" {\n", tfName(name, "bucket"))
	fmt.Fprintf(b, "  bucket = \"%s-assets\"\n}\n\n", name)
	if prefBool(prefs, "s3_versioning") {
		fmt.Fprintf(b, "resource \"aws_s3_bucket_versioning\" \"%s\" {\n", tfName(name, "bucket-versioning"))
		fmt.Fprintf(b, "  bucket = aws_s3_bucket.%s.id\n", tfName(name, "bucket"))
		b.WriteString("  versioning_configuration {\n    status = \"Enabled\"\n  }\n}\n\n")
	}
	if prefBool(prefs, "s3_encryption") {
		fmt.Fprintf(b, "resource \"aws_s3_bucket_server_side_encryption_configuration\" \"%s\" {\n", tfName(name, "bucket-sse"))
		fmt.Fprintf(b, "  bucket = aws_s3_bucket.%s.id\n", tfName(name, "bucket"))
		b.WriteString("  rule {\n    apply_server_side_encryption_by_default {\n      sse_algorithm = \"aws:kms\"\n    }\n  }\n}\n\n")
	}
}

func writeTerraformCDN(b *strings.Builder, name string, prefs domain.UserPreferences) {
	fmt.Fprintf(b, "resource \"aws_cloudfront_distribution\" \"%s\" {\n", tfName(name, "cdn"))
	b.WriteString("  enabled     = true\n")
	fmt.Fprintf(b, "  price_class = \"%s\"\n", pref(prefs, "cloudfront_price_class"))
	b.WriteString("  default_cache_behavior {\n    allowed_methods        = [\"GET\", \"HEAD\"]\n    cached_methods         = [\"GET\", \"HEAD\"]\n    target_origin_id       = \"primary\"\n    viewer_protocol_policy = \"redirect-to-https\"\n")
	if prefBool(prefs, "cloudfront_caching") {
		b.WriteString("    min_ttl     = 0\n    default_ttl = 3600\n    max_ttl     = 86400\n")
	} else {
		b.WriteString("    min_ttl     = 0\n    default_ttl = 0\n    max_ttl     = 0\n")
	}
	b.WriteString("  }\n}\n\n")
}

// tfName joins the project slug and a suffix into a Terraform identifier.
func tfName(name, suffix string) string {
	return strings.ReplaceAll(name+"_"+suffix, "-", "_")
}
