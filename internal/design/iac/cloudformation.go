package iac

import (
	"fmt"
	"strings"

	"github.com/archfind/arch-backend/internal/design/domain"
)

// RenderCloudFormation emits a YAML template with one resource per selected
// category, in canonical category order.
func RenderCloudFormation(q domain.Questionnaire, services domain.ServiceSelection, prefs domain.UserPreferences) string {
	name := resourceName(q.ProjectName)
	var b strings.Builder

	b.WriteString("AWSTemplateFormatVersion: \"2010-09-09\"\n")
	fmt.Fprintf(&b, "Description: Generated infrastructure for %s\n", q.ProjectName)
	b.WriteString("Resources:\n")

	for _, cat := range domain.CategoryOrder {
		if _, ok := services[cat]; !ok {
			continue
		}
		switch cat {
		case domain.CategoryCompute:
			writeCFNCompute(&b, q, name, prefs)
		case domain.CategoryDatabase:
			writeCFNDatabase(&b, q, name, prefs)
		case domain.CategoryStorage:
			writeCFNStorage(&b, name, prefs)
		case domain.CategoryLoadBalancer:
			b.WriteString("  LoadBalancer:\n    Type: AWS::ElasticLoadBalancingV2::LoadBalancer\n    Properties:\n")
			fmt.Fprintf(&b, "      Name: %s-alb\n", name)
			b.WriteString("      Type: application\n      Scheme: internet-facing\n")
		case domain.CategoryCDN:
			b.WriteString("  Distribution:\n    Type: AWS::CloudFront::Distribution\n    Properties:\n      DistributionConfig:\n        Enabled: true\n")
			fmt.Fprintf(&b, "        PriceClass: %s\n", pref(prefs, "cloudfront_price_class"))
			b.WriteString("        DefaultCacheBehavior:\n          TargetOriginId: primary\n          ViewerProtocolPolicy: redirect-to-https\n")
			if prefBool(prefs, "cloudfront_caching") {
				b.WriteString("          DefaultTTL: 3600\n          MaxTTL: 86400\n")
			} else {
				b.WriteString("          DefaultTTL: 0\n          MaxTTL: 0\n")
			}
		case domain.CategoryDNS:
			b.WriteString("  HostedZone:\n    Type: AWS::Route53::HostedZone\n    Properties:\n")
			fmt.Fprintf(&b, "      Name: %s.example.com\n", name)
		case domain.CategoryMonitoring:
			b.WriteString("  LogGroup:\n    Type: AWS::Logs::LogGroup\n    Properties:\n")
			fmt.Fprintf(&b, "      LogGroupName: /%s/app\n", name)
			b.WriteString("      RetentionInDays: 30\n")
		}
	}

	return b.String()
}

func writeCFNCompute(b *strings.Builder, q domain.Questionnaire, name string, prefs domain.UserPreferences) {
	switch q.Compute {
	case domain.ComputeServerless:
		b.WriteString("  AppFunction:\n    Type: AWS::Lambda::Function\n    Properties:\n")
		fmt.Fprintf(b, "      FunctionName: %s-fn\n", name)
		fmt.Fprintf(b, "      Runtime: %s\n", pref(prefs, "lambda_runtime"))
		fmt.Fprintf(b, "      MemorySize: %s\n", pref(prefs, "lambda_memory_mb"))
		fmt.Fprintf(b, "      Timeout: %s\n", pref(prefs, "lambda_timeout"))
		b.WriteString("      Handler: index.handler\n      Role: !GetAtt LambdaExecRole.Arn\n      Code:\n        ZipFile: \"exports.handler = async () => {}\"\n")
		b.WriteString("  LambdaExecRole:\n    Type: AWS::IAM::Role\n    Properties:\n      AssumeRolePolicyDocument:\n        Version: \"2012-10-17\"\n        Statement:\n          - Effect: Allow\n            Principal:\n              Service: lambda.amazonaws.com\n            Action: sts:AssumeRole\n")
	case domain.ComputeContainers:
		b.WriteString("  Cluster:\n    Type: AWS::ECS::Cluster\n    Properties:\n")
		fmt.Fprintf(b, "      ClusterName: %s-cluster\n", name)
		b.WriteString("  Service:\n    Type: AWS::ECS::Service\n    Properties:\n      Cluster: !Ref Cluster\n      LaunchType: FARGATE\n      DesiredCount: 2\n")
	case domain.ComputeVMs:
		b.WriteString("  AppInstance:\n    Type: AWS::EC2::Instance\n    Properties:\n")
		fmt.Fprintf(b, "      InstanceType: %s\n", pref(prefs, "ec2_instance_type"))
		b.WriteString("      BlockDeviceMappings:\n        - DeviceName: /dev/xvda\n          Ebs:\n")
		fmt.Fprintf(b, "            VolumeSize: %s\n", pref(prefs, "ec2_storage_size"))
		fmt.Fprintf(b, "            VolumeType: %s\n", pref(prefs, "ec2_storage_type"))
	}
}

func writeCFNDatabase(b *strings.Builder, q domain.Questionnaire, name string, prefs domain.UserPreferences) {
	switch q.Database {
	case domain.DatabaseSQL:
		b.WriteString("  Database:\n    Type: AWS::RDS::DBInstance\n    Properties:\n")
		fmt.Fprintf(b, "      DBInstanceIdentifier: %s-db\n", name)
		fmt.Fprintf(b, "      Engine: %s\n", pref(prefs, "rds_engine"))
		fmt.Fprintf(b, "      DBInstanceClass: %s\n", pref(prefs, "rds_instance_class"))
		fmt.Fprintf(b, "      AllocatedStorage: \"%s\"\n", pref(prefs, "rds_storage_gb"))
		fmt.Fprintf(b, "      MultiAZ: %s\n", pref(prefs, "rds_multi_az"))
	case domain.DatabaseNoSQL:
		b.WriteString("  Table:\n    Type: AWS::DynamoDB::Table\n    Properties:\n")
		fmt.Fprintf(b, "      TableName: %s-table\n", name)
		b.WriteString("      BillingMode: PAY_PER_REQUEST\n      AttributeDefinitions:\n        - AttributeName: pk\n          AttributeType: S\n      KeySchema:\n        - AttributeName: pk\n          KeyType: HASH\n")
	}
}

func writeCFNStorage(b *strings.Builder, name string, prefs domain.UserPreferences) {
	b.WriteString("  AssetsBucket:\n    Type: AWS::S3::Bucket\n    Properties:\n")
	fmt.Fprintf(b, "      BucketName: %s-assets\n", name)
	if prefBool(prefs, "s3_versioning") {
		b.WriteString("      VersioningConfiguration:\n        Status: Enabled\n")
	}
	if prefBool(prefs, "s3_encryption") {
		b.WriteString("      BucketEncryption:\n        ServerSideEncryptionConfiguration:\n          - ServerSideEncryptionByDefault:\n              SSEAlgorithm: aws:kms\n")
	}
	b.WriteString("      PublicAccessBlockConfiguration:\n        BlockPublicAcls: true\n        BlockPublicPolicy: true\n        IgnorePublicAcls: true\n        RestrictPublicBuckets: true\n")
}
