package templates

import "github.com/strickvl/matcha/internal/output"

// Azure returns the manifest of the published Azure template tree.
func Azure() Manifest {
	return Manifest{
		RootFiles: []string{
			".gitignore",
			".terraform.lock.hcl",
		},
		RootPattern:       "*.tf",
		AllowedExtensions: []string{"tf", "yaml", "tpl"},
		Submodules: []string{
			"aks",
			"resource_group",
			"mlflow_module",
			"storage",
			"seldon",
			"zenml_storage",
			"zen_server",
			"azure_container_registry",
			"zen_server/zenml_helm",
			"zen_server/zenml_helm/templates",
		},
	}
}

// AzureResources lists the resource categories the Azure template
// provisions, shown to the user before the override prompt.
func AzureResources() []output.Resource {
	return []output.Resource{
		{Name: "Resource group", Description: "A resource group"},
		{Name: "Azure Kubernetes Service (AKS)", Description: "A kubernetes cluster"},
		{Name: "Two Storage Containers", Description: "A storage container for experiment tracking artifacts and a second for model training artifacts"},
		{Name: "Seldon Core", Description: "A framework for model deployment on top of a kubernetes cluster"},
		{Name: "Azure Container Registry", Description: "A container registry for storing docker images"},
		{Name: "ZenServer", Description: "A zenml server required for remote orchestration"},
	}
}
